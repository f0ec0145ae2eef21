package avisos

import "testing"

func TestSanitizarNombre(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"foto.jpg", "foto.jpg"},
		{"mi foto.jpg", "mi_foto.jpg"},
		{"../../etc/passwd", "passwd"},
		{`..\..\windows\system32`, "system32"},
		{"fo$to!#.png", "foto.png"},
		{"niño ñandú.png", "nio_and.png"},
		{"...", ""},
		{"   ", ""},
	}

	for _, c := range cases {
		if got := SanitizarNombre(c.in); got != c.want {
			t.Errorf("SanitizarNombre(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestExtensionPermitida(t *testing.T) {
	permitidas := []string{"a.png", "b.jpg", "c.JPEG", "d.gif", "e.webp"}
	for _, n := range permitidas {
		if !ExtensionPermitida(n) {
			t.Errorf("ExtensionPermitida(%q) = false", n)
		}
	}

	rechazadas := []string{"a.exe", "b.pdf", "sin_extension", "c.png.sh"}
	for _, n := range rechazadas {
		if ExtensionPermitida(n) {
			t.Errorf("ExtensionPermitida(%q) = true", n)
		}
	}
}
