package term

import (
	"strings"
	"testing"
)

func TestDecodeEscape(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Sequence
	}{
		{"csi up", "[A", SeqUp},
		{"csi down", "[B", SeqDown},
		{"csi right", "[C", SeqRight},
		{"csi left", "[D", SeqLeft},
		{"csi home letter", "[H", SeqHome},
		{"csi end letter", "[F", SeqEnd},
		{"ss3 up", "OA", SeqUp},
		{"ss3 down", "OB", SeqDown},
		{"ss3 right", "OC", SeqRight},
		{"ss3 left", "OD", SeqLeft},
		{"ss3 home", "OH", SeqHome},
		{"ss3 end", "OF", SeqEnd},
		{"tilde home", "[1~", SeqHome},
		{"tilde delete", "[3~", SeqDelete},
		{"tilde end", "[4~", SeqEnd},
		{"tilde page up", "[5~", SeqPageUp},
		{"tilde page down", "[6~", SeqPageDown},
		{"tilde unknown code", "[2~", SeqEscape},
		{"two digit code", "[15~", SeqEscape},
		{"csi unknown letter", "[Z", SeqEscape},
		{"ss3 unknown letter", "OZ", SeqEscape},
		{"not a sequence", "x", SeqEscape},
		{"digit without tilde", "[3x", SeqEscape},
		{"empty input", "", SeqEscape},
		{"truncated csi", "[", SeqEscape},
		{"truncated code", "[5", SeqEscape},
		{"truncated ss3", "O", SeqEscape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeEscape(strings.NewReader(tt.input))
			if got != tt.want {
				t.Errorf("DecodeEscape(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDecodeEscapeConsumesNothingExtra(t *testing.T) {
	r := strings.NewReader("[Cq")
	if got := DecodeEscape(r); got != SeqRight {
		t.Fatalf("got %v, want %v", got, SeqRight)
	}
	b, err := r.ReadByte()
	if err != nil || b != 'q' {
		t.Errorf("decoder consumed trailing byte: %c %v", b, err)
	}
}
