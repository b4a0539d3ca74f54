package identity

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestFromRequestMissingCookie(t *testing.T) {
	r := httptest.NewRequest("GET", "/played", nil)
	if _, err := FromRequest(r); !errors.Is(err, ErrNoIdentity) {
		t.Errorf("FromRequest with no cookie = %v, want ErrNoIdentity", err)
	}
}

func TestFromRequestMalformedCookie(t *testing.T) {
	r := httptest.NewRequest("GET", "/played", nil)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: "not-a-uuid"})
	if _, err := FromRequest(r); !errors.Is(err, ErrNoIdentity) {
		t.Errorf("FromRequest with malformed cookie = %v, want ErrNoIdentity", err)
	}
}

func TestEnsureMintsOnce(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/daily", nil)

	minted := Ensure(w, r)
	if minted == uuid.Nil {
		t.Fatal("Ensure returned the nil uuid")
	}

	cookies := w.Result().Cookies()
	var set *http.Cookie
	for _, c := range cookies {
		if c.Name == CookieName {
			set = c
		}
	}
	if set == nil {
		t.Fatal("Ensure did not set the uid cookie")
	}
	if set.Value != minted.String() {
		t.Errorf("cookie value %q does not match returned id %q", set.Value, minted)
	}
	if !set.HttpOnly {
		t.Error("uid cookie is not HttpOnly")
	}
	if set.SameSite != http.SameSiteLaxMode {
		t.Error("uid cookie is not SameSite=Lax")
	}

	// A second request carrying the cookie reuses the identity.
	w2 := httptest.NewRecorder()
	r2 := httptest.NewRequest("GET", "/daily", nil)
	r2.AddCookie(&http.Cookie{Name: CookieName, Value: minted.String()})
	if again := Ensure(w2, r2); again != minted {
		t.Errorf("Ensure minted a new id %s for a returning caller %s", again, minted)
	}
	if len(w2.Result().Cookies()) != 0 {
		t.Error("Ensure re-set the cookie for a caller that already had one")
	}
}
