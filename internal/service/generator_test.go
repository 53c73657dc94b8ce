package service

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/randkit/randkit-go/internal/crypto"
	"github.com/randkit/randkit-go/internal/generator"
	"github.com/randkit/randkit-go/internal/model"
)

func boolPtr(b bool) *bool { return &b }
func intPtr(n int) *int    { return &n }

func newTestGeneratorService() *GeneratorService {
	hasher := crypto.NewHasher(crypto.HashParams{Memory: 1024, Iterations: 1, Parallelism: 1})
	return NewGeneratorService(generator.New(generator.NewSeededSource(1)), hasher)
}

func TestNumber(t *testing.T) {
	tests := []struct {
		name     string
		min, max string
		wantErr  error
	}{
		{name: "numbers", min: `1`, max: `10`},
		{name: "numeric strings", min: `"-5"`, max: `" 5 "`},
		{name: "missing min", min: ``, max: `10`, wantErr: generator.ErrInvalidRange},
		{name: "null max", min: `1`, max: `null`, wantErr: generator.ErrInvalidRange},
		{name: "not a number", min: `"abc"`, max: `10`, wantErr: generator.ErrInvalidRange},
		{name: "fraction", min: `1.5`, max: `10`, wantErr: generator.ErrInvalidRange},
		{name: "min equals max", min: `3`, max: `3`, wantErr: generator.ErrInvalidRange},
		{name: "min above max", min: `9`, max: `3`, wantErr: generator.ErrInvalidRange},
	}

	svc := newTestGeneratorService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := model.NumberRequest{Min: json.RawMessage(tt.min), Max: json.RawMessage(tt.max)}
			resp, err := svc.Number(req)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			lo, _ := parseBound(req.Min)
			hi, _ := parseBound(req.Max)
			if resp.Value < lo || resp.Value > hi {
				t.Errorf("value %d outside [%d, %d]", resp.Value, lo, hi)
			}
		})
	}
}

func TestString_Defaults(t *testing.T) {
	svc := newTestGeneratorService()
	resp, err := svc.String(model.StringRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != DefaultStringLength || len(resp.Value) != DefaultStringLength {
		t.Errorf("expected length %d, got %d (%q)", DefaultStringLength, resp.Length, resp.Value)
	}
	if strings.ContainsAny(resp.Value, "!@#$%^&*()_+-=[]{}|;:,.<>?") {
		t.Errorf("special characters are off by default, got %q", resp.Value)
	}
}

func TestString_ExplicitZeroLength(t *testing.T) {
	svc := newTestGeneratorService()
	_, err := svc.String(model.StringRequest{Length: intPtr(0)})
	if !errors.Is(err, generator.ErrInvalidLength) {
		t.Fatalf("expected ErrInvalidLength, got %v", err)
	}
}

func TestString_NoCharacterTypes(t *testing.T) {
	svc := newTestGeneratorService()
	_, err := svc.String(model.StringRequest{
		Length:    intPtr(10),
		Uppercase: boolPtr(false),
		Lowercase: boolPtr(false),
		Numbers:   boolPtr(false),
		Special:   boolPtr(false),
	})
	if !errors.Is(err, generator.ErrEmptyCharset) {
		t.Fatalf("expected ErrEmptyCharset, got %v", err)
	}
}

func TestPassword_Defaults(t *testing.T) {
	svc := newTestGeneratorService()
	resp, err := svc.Password(context.Background(), model.PasswordRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != DefaultPasswordLength {
		t.Errorf("expected length %d, got %d", DefaultPasswordLength, resp.Length)
	}
	if len(resp.Password) != DefaultPasswordLength {
		t.Errorf("expected password length %d, got %d", DefaultPasswordLength, len(resp.Password))
	}
	if resp.Strength.Label != "strong" || resp.Strength.Display != "强" {
		t.Errorf("expected a strong password, got %+v", resp.Strength)
	}
	if resp.Hash != "" {
		t.Errorf("hash should be empty unless requested, got %q", resp.Hash)
	}
}

func TestPassword_CustomOptions(t *testing.T) {
	svc := newTestGeneratorService()
	resp, err := svc.Password(context.Background(), model.PasswordRequest{
		Length:    intPtr(32),
		Uppercase: boolPtr(true),
		Lowercase: boolPtr(true),
		Numbers:   boolPtr(false),
		Special:   boolPtr(false),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 32 {
		t.Errorf("expected length 32, got %d", resp.Length)
	}
	for _, c := range resp.Password {
		if !((c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')) {
			t.Errorf("unexpected character %q in password with only uppercase+lowercase", c)
		}
	}
}

func TestPassword_Hash(t *testing.T) {
	svc := newTestGeneratorService()
	resp, err := svc.Password(context.Background(), model.PasswordRequest{Hash: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ok, err := svc.hasher.Verify(resp.Password, resp.Hash)
	if err != nil {
		t.Fatalf("unexpected error verifying hash: %v", err)
	}
	if !ok {
		t.Errorf("hash %q does not match password %q", resp.Hash, resp.Password)
	}
}

func TestVerify(t *testing.T) {
	svc := newTestGeneratorService()
	resp, err := svc.Password(context.Background(), model.PasswordRequest{Hash: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"same password", resp.Password, true},
		{"other password", resp.Password + "x", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Verify(context.Background(), model.VerifyRequest{Password: tt.password, Hash: resp.Hash})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Match != tt.want {
				t.Errorf("Match = %v, want %v", got.Match, tt.want)
			}
		})
	}
}

func TestVerify_InvalidHash(t *testing.T) {
	svc := newTestGeneratorService()
	_, err := svc.Verify(context.Background(), model.VerifyRequest{Password: "pw", Hash: "not-a-hash"})
	if !errors.Is(err, crypto.ErrInvalidHashFormat) {
		t.Fatalf("expected ErrInvalidHashFormat, got %v", err)
	}
}

func TestPassword_HashWaitsForSlot(t *testing.T) {
	svc := newTestGeneratorService()
	if err := svc.hashSlots.Acquire(context.Background(), MaxConcurrentHashes); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := svc.Password(ctx, model.PasswordRequest{Hash: true})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected context.DeadlineExceeded while all slots are busy, got %v", err)
	}

	// A password without a hash never waits for a slot.
	if _, err := svc.Password(ctx, model.PasswordRequest{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	svc.hashSlots.Release(MaxConcurrentHashes)
	if _, err := svc.Password(context.Background(), model.PasswordRequest{Hash: true}); err != nil {
		t.Fatalf("unexpected error after slots were released: %v", err)
	}
}

func TestPassword_LengthOutOfRange(t *testing.T) {
	svc := newTestGeneratorService()
	for _, n := range []int{0, 7, 33, 200} {
		_, err := svc.Password(context.Background(), model.PasswordRequest{Length: intPtr(n)})
		if !errors.Is(err, generator.ErrInvalidLength) {
			t.Errorf("length %d: expected ErrInvalidLength, got %v", n, err)
		}
	}
}

func TestPassword_NoCharacterTypes(t *testing.T) {
	svc := newTestGeneratorService()
	_, err := svc.Password(context.Background(), model.PasswordRequest{
		Length:    intPtr(16),
		Uppercase: boolPtr(false),
		Lowercase: boolPtr(false),
		Numbers:   boolPtr(false),
		Special:   boolPtr(false),
	})
	if !errors.Is(err, generator.ErrEmptyCharset) {
		t.Fatalf("expected ErrEmptyCharset, got %v", err)
	}
}

func TestStrength(t *testing.T) {
	svc := newTestGeneratorService()
	resp := svc.Strength(model.StrengthRequest{Password: ""})
	if resp.Score != 0 || resp.Label != "weak" || resp.Display != "弱" {
		t.Errorf("unexpected strength for empty password: %+v", resp)
	}
}

func TestUUID(t *testing.T) {
	svc := newTestGeneratorService()
	if v := svc.UUID().Value; len(v) != 36 || v[14] != '4' {
		t.Errorf("unexpected uuid %q", v)
	}
}

func TestPhone(t *testing.T) {
	svc := newTestGeneratorService()

	resp, err := svc.Phone(model.PhoneRequest{Carriers: []string{"ctcc"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Value) != 11 {
		t.Errorf("expected 11 digits, got %q", resp.Value)
	}

	if _, err := svc.Phone(model.PhoneRequest{}); err != nil {
		t.Errorf("empty carrier list should fall back to all, got %v", err)
	}

	if _, err := svc.Phone(model.PhoneRequest{Carriers: []string{"att"}}); !errors.Is(err, ErrInvalidOption) {
		t.Errorf("expected ErrInvalidOption, got %v", err)
	}
}

func TestUsername(t *testing.T) {
	svc := newTestGeneratorService()

	resp, err := svc.Username(model.UsernameRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != generator.DefaultNameLength {
		t.Errorf("expected default length %d, got %d", generator.DefaultNameLength, resp.Length)
	}
	if strings.Contains(resp.Value, "_") {
		t.Errorf("underscore is off by default, got %q", resp.Value)
	}

	_, err = svc.Username(model.UsernameRequest{
		Letters:    boolPtr(false),
		Numbers:    boolPtr(false),
		Underscore: boolPtr(false),
	})
	if !errors.Is(err, generator.ErrEmptyCharset) {
		t.Errorf("expected ErrEmptyCharset, got %v", err)
	}
}

func TestEmail(t *testing.T) {
	svc := newTestGeneratorService()

	resp, err := svc.Email(model.EmailRequest{NameLength: 5, Domain: "qq.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !regexp.MustCompile(`^[a-z0-9]{5}@qq\.com$`).MatchString(resp.Value) {
		t.Errorf("unexpected email %q", resp.Value)
	}

	if _, err := svc.Email(model.EmailRequest{Domain: "bad domain"}); !errors.Is(err, generator.ErrInvalidDomain) {
		t.Errorf("expected ErrInvalidDomain, got %v", err)
	}
}

func TestIP(t *testing.T) {
	svc := newTestGeneratorService()

	resp, err := svc.IP(model.IPRequest{Version: "v6", Scope: "private"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Version != "v6" || resp.Scope != "private" || !strings.HasPrefix(resp.Value, "fd") {
		t.Errorf("unexpected response %+v", resp)
	}

	resp, err = svc.IP(model.IPRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Version != "v4" || resp.Scope != "public" {
		t.Errorf("expected public v4 by default, got %+v", resp)
	}

	if _, err := svc.IP(model.IPRequest{Version: "v9"}); !errors.Is(err, ErrInvalidOption) {
		t.Errorf("expected ErrInvalidOption, got %v", err)
	}
}

func TestDate(t *testing.T) {
	svc := newTestGeneratorService()
	svc.now = func() time.Time { return time.Date(2000, time.January, 3, 15, 0, 0, 0, time.UTC) }

	allowed := map[string]bool{"2000-01-01": true, "2000-01-02": true, "2000-01-03": true}
	for i := 0; i < 50; i++ {
		// Unparseable bounds fall back to 2000-01-01 and the clock.
		v := svc.Date(model.DateRequest{Start: "yesterday", End: ""}).Value
		if !allowed[v] {
			t.Fatalf("date %q outside the default range", v)
		}
	}

	v := svc.Date(model.DateRequest{Start: "2022-08-15", End: "2022-08-15", Format: "yyyy年MM月dd日"}).Value
	if v != "2022年08月15日" {
		t.Errorf("expected 2022年08月15日, got %q", v)
	}
}

func TestTime(t *testing.T) {
	svc := newTestGeneratorService()

	v := svc.Time(model.TimeRequest{}).Value
	if !regexp.MustCompile(`^\d{2}:\d{2}$`).MatchString(v) {
		t.Errorf("expected 24-hour time without seconds by default, got %q", v)
	}

	v = svc.Time(model.TimeRequest{Hour24: boolPtr(false), Seconds: true}).Value
	if !regexp.MustCompile(`^\d{2}:\d{2}:\d{2} (AM|PM)$`).MatchString(v) {
		t.Errorf("expected 12-hour time with seconds, got %q", v)
	}
}
