package tutor

import (
	"reflect"
	"testing"
)

func TestImprove(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		want     string
		wantTips []string
	}{
		{
			name:     "empty input",
			input:    "",
			want:     "",
			wantTips: []string{},
		},
		{
			name:     "whitespace only",
			input:    "   \t\n",
			want:     "",
			wantTips: []string{},
		},
		{
			name:  "pronoun and contraction",
			input: "i dont know",
			want:  "I don't know.",
			wantTips: []string{
				"Consider using 'I' instead of 'i'.",
				"Consider using 'don't' instead of 'dont'.",
			},
		},
		{
			name:     "verb agreement",
			input:    "he have a cat",
			want:     "He has a cat.",
			wantTips: []string{"Consider using 'he has' instead of 'he have'."},
		},
		{
			name:     "already correct",
			input:    "  Hello.  ",
			want:     "Hello.",
			wantTips: []string{EncouragementTip},
		},
		{
			name:     "capitalization and period only",
			input:    "good day",
			want:     "Good day.",
			wantTips: []string{},
		},
		{
			name:     "existing exclamation kept",
			input:    "hey!",
			want:     "Hey!",
			wantTips: []string{},
		},
		{
			name:     "auxiliary question",
			input:    "does that make sense",
			want:     "Does that make sense?",
			wantTips: []string{},
		},
		{
			name:     "lead word needs trailing space",
			input:    "dogs bark",
			want:     "Dogs baarek.",
			wantTips: []string{"Consider using 'are' instead of 'r'."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, tips := Improve(tt.input)
			if got != tt.want {
				t.Errorf("Improve(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if !reflect.DeepEqual(tips, tt.wantTips) {
				t.Errorf("Improve(%q) tips = %#v, want %#v", tt.input, tips, tt.wantTips)
			}
		})
	}
}

// Single-letter keys match inside words.  These cases pin that behavior so
// a change to word-bounded matching shows up as a deliberate test update.
func TestImproveSubstringQuirk(t *testing.T) {
	t.Parallel()

	t.Run("i inside this", func(t *testing.T) {
		got, tips := Improve("this")
		if got != "ThIs." {
			t.Fatalf("got = %q, want %q", got, "ThIs.")
		}
		if len(tips) != 1 || tips[0] != "Consider using 'I' instead of 'i'." {
			t.Fatalf("tips = %#v", tips)
		}
	})

	t.Run("question rewritten by cascade", func(t *testing.T) {
		got, tips := Improve("what is your name")
		want := "What Is yoyoyouare name?"
		if got != want {
			t.Fatalf("got = %q, want %q", got, want)
		}
		wantTips := []string{
			"Consider using 'I' instead of 'i'.",
			"Consider using 'you' instead of 'u'.",
			"Consider using 'your' instead of 'ur'.",
			"Consider using 'are' instead of 'r'.",
		}
		if !reflect.DeepEqual(tips, wantTips) {
			t.Fatalf("tips = %#v, want %#v", tips, wantTips)
		}
	})

	t.Run("i has is shadowed by i", func(t *testing.T) {
		got, tips := Improve("i has")
		if got != "I has." {
			t.Fatalf("got = %q, want %q", got, "I has.")
		}
		for _, tip := range tips {
			if tip == "Consider using 'I have' instead of 'i has'." {
				t.Fatalf("unexpected tip %q", tip)
			}
		}
	})
}

func TestImproveConverges(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"i dont know", "he have a cat", "good day", "Hello."} {
		first, _ := Improve(in)
		second, _ := Improve(first)
		if second != first {
			t.Errorf("Improve(Improve(%q)) = %q, want %q", in, second, first)
		}
	}
}

func TestImproveSecondPassStillFlagsLowercasedI(t *testing.T) {
	t.Parallel()

	got, tips := Improve("I don't know.")
	if got != "I don't know." {
		t.Fatalf("got = %q", got)
	}
	want := []string{"Consider using 'I' instead of 'i'.", EncouragementTip}
	if !reflect.DeepEqual(tips, want) {
		t.Fatalf("tips = %#v, want %#v", tips, want)
	}
}
