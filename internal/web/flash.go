package web

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"net/http"
	"strings"
)

const flashCookie = "flash"

// setFlash deja un mensaje de una sola lectura en una cookie firmada
// con SECRET_KEY, para sobrevivir el redirect post-submit.
func (h *Handler) setFlash(w http.ResponseWriter, msg string) {
	payload := base64.RawURLEncoding.EncodeToString([]byte(msg))
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    payload + "." + firma(h.secret, payload),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
	})
}

// popFlash devuelve el mensaje pendiente (si hay y la firma calza)
// y borra la cookie.
func (h *Handler) popFlash(w http.ResponseWriter, r *http.Request) string {
	c, err := r.Cookie(flashCookie)
	if err != nil {
		return ""
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	parts := strings.SplitN(c.Value, ".", 2)
	if len(parts) != 2 {
		return ""
	}
	if !hmac.Equal([]byte(parts[1]), []byte(firma(h.secret, parts[0]))) {
		return ""
	}

	b, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return ""
	}
	return string(b)
}

func firma(secret, payload string) string {
	m := hmac.New(sha256.New, []byte(secret))
	m.Write([]byte(payload))
	return hex.EncodeToString(m.Sum(nil))
}
