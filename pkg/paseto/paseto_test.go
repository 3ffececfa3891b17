package pasetotoken

import (
	"errors"
	"testing"
	"time"

	paseto "aidanwoods.dev/go-paseto"
	"github.com/google/uuid"
)

const (
	testIssuer   = "arnica-identity"
	testAudience = "arnica-api"
)

func mintLocal(t *testing.T, keys Keys, mutate func(*paseto.Token)) string {
	t.Helper()

	now := time.Now()
	tok := paseto.NewToken()
	tok.SetIssuer(testIssuer)
	tok.SetAudience(testAudience)
	tok.SetJti(uuid.NewString())
	tok.SetSubject("user")
	tok.SetIssuedAt(now)
	tok.SetNotBefore(now)
	tok.SetExpiration(now.Add(15 * time.Minute))
	tok.SetString("typ", string(TokenTypeAccess))
	tok.SetString("uid", uuid.NewString())

	if mutate != nil {
		mutate(&tok)
	}

	return tok.V4Encrypt(*keys.Symmetric, nil)
}

func newLocalManager(t *testing.T, keys Keys) *Manager {
	t.Helper()

	m, err := New(Config{
		Mode:     ModeLocal,
		Issuer:   testIssuer,
		Audience: testAudience,
	}, keys)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return m
}

func TestVerify(t *testing.T) {
	keys := NewLocalKeys()
	m := newLocalManager(t, keys)

	uid := uuid.New()
	sid := uuid.New()
	tokenStr := mintLocal(t, keys, func(tok *paseto.Token) {
		tok.SetString("uid", uid.String())
		tok.SetString("sid", sid.String())
	})

	claims, err := m.Verify(tokenStr)
	if err != nil {
		t.Fatalf("Verify() failed: %v", err)
	}
	if claims.UserID != uid {
		t.Errorf("UserID = %s, want %s", claims.UserID, uid)
	}
	if claims.SessionID == nil || *claims.SessionID != sid {
		t.Errorf("SessionID = %v, want %s", claims.SessionID, sid)
	}
	if claims.Type != TokenTypeAccess {
		t.Errorf("Type = %q, want access", claims.Type)
	}
	if claims.IsExpired() {
		t.Error("fresh token reported as expired")
	}
}

func TestVerify_NoSession(t *testing.T) {
	keys := NewLocalKeys()
	m := newLocalManager(t, keys)

	claims, err := m.Verify(mintLocal(t, keys, nil))
	if err != nil {
		t.Fatalf("Verify() failed: %v", err)
	}
	if claims.SessionID != nil {
		t.Errorf("SessionID = %v, want nil", claims.SessionID)
	}
}

func TestVerify_Rejections(t *testing.T) {
	keys := NewLocalKeys()
	m := newLocalManager(t, keys)

	tests := []struct {
		name   string
		mutate func(*paseto.Token)
	}{
		{
			name:   "expired",
			mutate: func(tok *paseto.Token) { tok.SetExpiration(time.Now().Add(-time.Minute)) },
		},
		{
			name:   "wrong issuer",
			mutate: func(tok *paseto.Token) { tok.SetIssuer("someone-else") },
		},
		{
			name:   "wrong audience",
			mutate: func(tok *paseto.Token) { tok.SetAudience("other-api") },
		},
		{
			name:   "malformed uid",
			mutate: func(tok *paseto.Token) { tok.SetString("uid", "not-a-uuid") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.Verify(mintLocal(t, keys, tt.mutate))
			if err == nil {
				t.Fatal("Verify() = nil error, want rejection")
			}
			var invalid ErrInvalidToken
			if !errors.As(err, &invalid) {
				t.Errorf("error = %T, want ErrInvalidToken", err)
			}
		})
	}
}

func TestVerify_WrongKey(t *testing.T) {
	keys := NewLocalKeys()
	m := newLocalManager(t, NewLocalKeys())

	if _, err := m.Verify(mintLocal(t, keys, nil)); err == nil {
		t.Fatal("token encrypted under a different key must not verify")
	}
}

func TestLoadKeys(t *testing.T) {
	if _, err := LoadKeys(KeyStrings{Mode: ModeLocal}); err == nil {
		t.Error("ModeLocal without a key hex should fail")
	}
	if _, err := LoadKeys(KeyStrings{Mode: ModePublic}); err == nil {
		t.Error("ModePublic without a key hex should fail")
	}
	if _, err := LoadKeys(KeyStrings{Mode: "v2"}); err == nil {
		t.Error("unknown mode should fail")
	}

	sym := paseto.NewV4SymmetricKey()
	got, err := LoadKeys(KeyStrings{Mode: ModeLocal, SymmetricHex: sym.ExportHex()})
	if err != nil {
		t.Fatalf("LoadKeys(local) failed: %v", err)
	}
	if got.Symmetric == nil || got.Symmetric.ExportHex() != sym.ExportHex() {
		t.Error("loaded symmetric key does not round-trip")
	}

	pub := paseto.NewV4AsymmetricSecretKey().Public()
	got, err = LoadKeys(KeyStrings{Mode: ModePublic, PublicHex: pub.ExportHex()})
	if err != nil {
		t.Fatalf("LoadKeys(public) failed: %v", err)
	}
	if got.Public == nil {
		t.Error("loaded public key is nil")
	}
}
