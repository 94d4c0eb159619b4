package insights

import "testing"

func nudgeWithPriority(kind NudgeKind, priority Priority, seq int) Nudge {
	return Nudge{Kind: kind, Priority: priority, seq: seq}
}

func TestPrioritize(t *testing.T) {
	t.Run("orders by priority", func(t *testing.T) {
		got := prioritize([]Nudge{
			nudgeWithPriority("a", PriorityLow, 0),
			nudgeWithPriority("b", PriorityHigh, 1),
			nudgeWithPriority("c", PriorityMedium, 2),
		})
		want := []NudgeKind{"b", "c", "a"}
		for i, kind := range want {
			if got[i].Kind != kind {
				t.Errorf("position %d: expected %s, got %s", i, kind, got[i].Kind)
			}
		}
	})

	t.Run("ties break toward later generation", func(t *testing.T) {
		got := prioritize([]Nudge{
			nudgeWithPriority("first", PriorityMedium, 0),
			nudgeWithPriority("second", PriorityMedium, 1),
			nudgeWithPriority("third", PriorityMedium, 2),
		})
		want := []NudgeKind{"third", "second", "first"}
		for i, kind := range want {
			if got[i].Kind != kind {
				t.Errorf("position %d: expected %s, got %s", i, kind, got[i].Kind)
			}
		}
	})

	t.Run("truncates to five", func(t *testing.T) {
		var nudges []Nudge
		for i := 0; i < 8; i++ {
			nudges = append(nudges, nudgeWithPriority(NudgeKind(rune('a'+i)), PriorityMedium, i))
		}
		got := prioritize(nudges)
		if len(got) != maxNudges {
			t.Fatalf("expected %d nudges, got %d", maxNudges, len(got))
		}
	})

	t.Run("low priority dropped first", func(t *testing.T) {
		got := prioritize([]Nudge{
			nudgeWithPriority("low1", PriorityLow, 0),
			nudgeWithPriority("high1", PriorityHigh, 1),
			nudgeWithPriority("low2", PriorityLow, 2),
			nudgeWithPriority("med1", PriorityMedium, 3),
			nudgeWithPriority("high2", PriorityHigh, 4),
			nudgeWithPriority("med2", PriorityMedium, 5),
		})
		if len(got) != 5 {
			t.Fatalf("expected 5 nudges, got %d", len(got))
		}
		for _, n := range got {
			if n.Kind == "low1" {
				t.Error("oldest low-priority nudge should have been dropped")
			}
		}
	})

	t.Run("empty input stays empty", func(t *testing.T) {
		if got := prioritize(nil); len(got) != 0 {
			t.Errorf("expected empty result, got %d", len(got))
		}
	})
}
