package models

import "time"

// LabelType classifies a catalogue product.
type LabelType string

const (
	LabelSticker         LabelType = "Sticker"
	LabelBumperSticker   LabelType = "BumperSticker"
	LabelButton          LabelType = "Button"
	LabelMagnet          LabelType = "Magnet"
	LabelTShirt          LabelType = "TShirt"
	LabelEconomyStickers LabelType = "EconomyStickers"
	LabelStickersSheets  LabelType = "StickersSheets"
	LabelCustomHats      LabelType = "CustomHats"
)

// LabelTypes lists every valid label, in declaration order.
var LabelTypes = []LabelType{
	LabelSticker,
	LabelBumperSticker,
	LabelButton,
	LabelMagnet,
	LabelTShirt,
	LabelEconomyStickers,
	LabelStickersSheets,
	LabelCustomHats,
}

// ValidLabel reports whether s names a known label type.
func ValidLabel(s string) bool {
	for _, l := range LabelTypes {
		if string(l) == s {
			return true
		}
	}
	return false
}

// Product is a catalogue entry. Its document key is the decimal string of
// the sequential ID handed out by the counter.
type Product struct {
	DocID       string    `bson:"_id,omitempty" json:"-"`
	ID          int64     `bson:"id"          json:"id"`
	Title       string    `bson:"title"       json:"title"`
	Description string    `bson:"description" json:"description"`
	Link        string    `bson:"link"        json:"link"`
	ImageURL    string    `bson:"imageUrl"    json:"imageUrl"`
	Label       LabelType `bson:"label"       json:"label"`
	Bullets     []string  `bson:"bullets"     json:"bullets"`
	CreatedAt   time.Time `bson:"createdAt"   json:"-"`
	UpdatedAt   time.Time `bson:"updatedAt"   json:"-"`
}

// ProductView is the API shape of a product, with wire timestamps.
type ProductView struct {
	Product
	CreatedAt Timestamp `json:"createdAt"`
	UpdatedAt Timestamp `json:"updatedAt"`
}

// View converts p to its API shape.
func (p Product) View() ProductView {
	return ProductView{
		Product:   p,
		CreatedAt: NewTimestamp(p.CreatedAt),
		UpdatedAt: NewTimestamp(p.UpdatedAt),
	}
}

// ProductInput is the payload accepted when creating a product.
type ProductInput struct {
	Title       string   `json:"title"       validate:"required,min=3"`
	Description string   `json:"description" validate:"nullable"`
	Link        string   `json:"link"        validate:"required,url"`
	ImageURL    string   `json:"imageUrl"    validate:"required,url"`
	Label       string   `json:"label"       validate:"required,in=Sticker,BumperSticker,Button,Magnet,TShirt,EconomyStickers,StickersSheets,CustomHats"`
	Bullets     []string `json:"bullets"     validate:"nullable,max_items=5,each_min=1"`
}
