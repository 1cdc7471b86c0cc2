package tui

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/smileynet/contacts/internal/contact"
)

func TestIsTerminal_NonFileWriter(t *testing.T) {
	var buf bytes.Buffer
	if IsTerminal(&buf) {
		t.Error("non-*os.File writer should not be a TTY")
	}
}

func TestIsTerminal_RegularFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "test")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = f.Close() }()

	if IsTerminal(f) {
		t.Error("regular file should not be a TTY")
	}
}

func TestPrintContacts_Plain(t *testing.T) {
	var buf bytes.Buffer
	contacts := []contact.Contact{
		{Name: "Ana", Phone: "111"},
		{Name: "Beto", Phone: "222", Favorite: true},
	}

	if err := PrintContacts(&buf, contacts, PrintOptions{Title: "Contactos", Plain: true}); err != nil {
		t.Fatalf("PrintContacts() error = %v", err)
	}

	want := "Ana\t111\t\nBeto\t222\t*\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestPrintContacts_PlainEmpty(t *testing.T) {
	var buf bytes.Buffer

	if err := PrintContacts(&buf, nil, PrintOptions{Title: "Contactos", Plain: true}); err != nil {
		t.Fatalf("PrintContacts() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("output = %q, want empty", buf.String())
	}
}

func TestPrintContacts_Styled(t *testing.T) {
	var buf bytes.Buffer
	contacts := []contact.Contact{{Name: "Ana", Phone: "111", Favorite: true}}

	if err := PrintContacts(&buf, contacts, PrintOptions{Title: "Favoritos", FavoritesOnly: true}); err != nil {
		t.Fatalf("PrintContacts() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Favoritos", "Ana", "111"} {
		if !containsPlainText(out, want) {
			t.Errorf("output should contain %q:\n%s", want, ansi.Strip(out))
		}
	}
}

func TestPrintContacts_StyledEmpty(t *testing.T) {
	tests := []struct {
		name          string
		favoritesOnly bool
		want          string
		notWant       string
	}{
		{"all contacts", false, EmptyAll, EmptyFavorites},
		{"favorites only", true, EmptyFavorites, EmptyAll},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			opts := PrintOptions{Title: "Contactos", FavoritesOnly: tt.favoritesOnly}

			if err := PrintContacts(&buf, nil, opts); err != nil {
				t.Fatalf("PrintContacts() error = %v", err)
			}
			if !containsPlainText(buf.String(), tt.want) {
				t.Errorf("output should contain %q", tt.want)
			}
			if containsPlainText(buf.String(), tt.notWant) {
				t.Errorf("output should not contain %q", tt.notWant)
			}
		})
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestPrintContacts_WriteError(t *testing.T) {
	contacts := []contact.Contact{{Name: "Ana", Phone: "111"}}

	for _, plain := range []bool{true, false} {
		if err := PrintContacts(failWriter{}, contacts, PrintOptions{Title: "Contactos", Plain: plain}); err == nil {
			t.Errorf("plain=%v: expected write error", plain)
		}
	}
}
