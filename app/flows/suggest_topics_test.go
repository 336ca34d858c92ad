package flows

import (
	"errors"
	"testing"
)

func TestValidateTopicsAcceptsFiveToTen(t *testing.T) {
	five := []string{"a1", "b2", "c3", "d4", "e5"}
	got, err := validateTopics(five)
	if err != nil {
		t.Fatalf("expected five topics to pass, got: %v", err)
	}
	if len(got) != 5 {
		t.Errorf("expected 5 topics, got %d", len(got))
	}

	ten := append(five, "f6", "g7", "h8", "i9", "j10")
	if _, err := validateTopics(ten); err != nil {
		t.Errorf("expected ten topics to pass, got: %v", err)
	}
}

func TestValidateTopicsRejectsOutOfRange(t *testing.T) {
	if _, err := validateTopics([]string{"a", "b", "c", "d"}); !errors.Is(err, ErrBadSuggestion) {
		t.Errorf("expected four topics to fail with ErrBadSuggestion, got: %v", err)
	}

	eleven := make([]string, 11)
	for i := range eleven {
		eleven[i] = "topic"
	}
	if _, err := validateTopics(eleven); !errors.Is(err, ErrBadSuggestion) {
		t.Errorf("expected eleven topics to fail with ErrBadSuggestion, got: %v", err)
	}
}

func TestValidateTopicsDropsBlankEntries(t *testing.T) {
	topics := []string{" one ", "two", "", "   ", "three", "four", "five"}
	got, err := validateTopics(topics)
	if err != nil {
		t.Fatalf("expected cleaned list to pass, got: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("expected 5 cleaned topics, got %d", len(got))
	}
	if got[0] != "one" {
		t.Errorf("expected entries to be trimmed, got %q", got[0])
	}
}

func TestValidateTopicsBlankPaddingCannotReachMinimum(t *testing.T) {
	topics := []string{"one", "two", "three", "four", "", ""}
	if _, err := validateTopics(topics); !errors.Is(err, ErrBadSuggestion) {
		t.Errorf("expected blank-padded list to fail, got: %v", err)
	}
}
