package domain

import "testing"

func TestResolveIconFallsBackToTag(t *testing.T) {
	if got := ResolveIcon("briefcase"); got != IconBriefcase {
		t.Fatalf("expected briefcase, got %s", got)
	}
	if got := ResolveIcon("spaceship"); got != IconTag {
		t.Fatalf("unknown icon must resolve to tag, got %s", got)
	}
	if got := ResolveIcon(""); got != IconTag {
		t.Fatalf("empty icon must resolve to tag, got %s", got)
	}
}

func TestIconsAreAllKnownAndLabelled(t *testing.T) {
	icons := Icons()
	if len(icons) != len(iconLabels) {
		t.Fatalf("Icons() lists %d entries, label map has %d", len(icons), len(iconLabels))
	}
	for _, icon := range icons {
		if !icon.Known() {
			t.Fatalf("icon %s not in closed set", icon)
		}
		if icon.Label() == "" {
			t.Fatalf("icon %s has no label", icon)
		}
	}
}

func TestUnknownIconLabelUsesTagLabel(t *testing.T) {
	if Icon("spaceship").Label() != IconTag.Label() {
		t.Fatal("unknown icon label must fall back to the tag label")
	}
}
