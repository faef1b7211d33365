package handler

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"
	"time"
)

// Имя сессионной cookie и срок её жизни (совпадает с TTL сессии).
const (
	sessionCookieName = "forum_session"
	sessionCookieAge  = 24 * time.Hour
)

// signToken подписывает токен сессии HMAC-SHA256 c серверным секретом,
// чтобы значение cookie нельзя было подделать.
func signToken(token, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(token))
	return token + "." + hex.EncodeToString(mac.Sum(nil))
}

// verifyToken проверяет подпись и возвращает исходный токен.
func verifyToken(signed, secret string) (string, bool) {
	idx := strings.LastIndexByte(signed, '.')
	if idx <= 0 {
		return "", false
	}
	token := signed[:idx]
	if !hmac.Equal([]byte(signToken(token, secret)), []byte(signed)) {
		return "", false
	}
	return token, true
}

// setSessionCookie выставляет подписанную сессионную cookie.
func setSessionCookie(w http.ResponseWriter, token, secret string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    signToken(token, secret),
		Path:     "/",
		MaxAge:   int(sessionCookieAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie сбрасывает сессионную cookie.
func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// sessionTokenFromRequest достает и валидирует токен сессии из запроса.
func sessionTokenFromRequest(r *http.Request, secret string) (string, bool) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return "", false
	}
	return verifyToken(cookie.Value, secret)
}
