package deck

import "testing"

func TestDefaultDeck(t *testing.T) {
	d := DefaultDeck()
	if got, want := d.Size(), 10; got != want {
		t.Errorf("DefaultDeck().Size() = %d, want %d", got, want)
	}

	want := map[string]int{
		"R": 3,
		"T": 2,
		"S": 2,
		"D": 2,
		"M": 1,
	}
	got := map[string]int{
		"R": d.CountOf(Reactor),
		"T": d.CountOf(Thruster),
		"S": d.CountOf(Shield),
		"D": d.CountOf(Damage),
		"M": d.CountOf(Miss),
	}
	for letter, n := range want {
		if got[letter] != n {
			t.Errorf("count of %s = %d, want %d", letter, got[letter], n)
		}
	}
}
