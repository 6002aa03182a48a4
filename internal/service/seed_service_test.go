package service

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func newSeedService(env *testEnv) *SeedService {
	return NewSeedService(env.categories, env.products, env.currencies, env.pages, env.payments, env.admins)
}

func TestSeedIsIdempotent(t *testing.T) {
	env := setupServiceTest(t)
	svc := newSeedService(env)

	first, err := svc.Run("", "")
	if err != nil {
		t.Fatalf("first seed run failed: %v", err)
	}
	if first.Created == 0 || first.Existing != 0 {
		t.Fatalf("first run want all created, got created=%d existing=%d", first.Created, first.Existing)
	}

	second, err := svc.Run("", "")
	if err != nil {
		t.Fatalf("second seed run failed: %v", err)
	}
	if second.Created != 0 {
		t.Fatalf("second run must create nothing, got %d", second.Created)
	}
	if second.Existing != first.Created {
		t.Fatalf("second run existing want %d got %d", first.Created, second.Existing)
	}
	for _, outcome := range second.Outcomes {
		if outcome.Outcome != "already exists" {
			t.Fatalf("second run outcome for %s %q want already exists got %s", outcome.Kind, outcome.Key, outcome.Outcome)
		}
	}
}

func TestSeedDoesNotOverwriteExistingRows(t *testing.T) {
	env := setupServiceTest(t)
	svc := newSeedService(env)

	if _, err := svc.Run("", ""); err != nil {
		t.Fatalf("seed run failed: %v", err)
	}

	existing, err := env.categories.GetBySlug("electronics")
	if err != nil || existing == nil {
		t.Fatalf("seeded category missing: %v", err)
	}
	rename := map[string]interface{}{"name": "Gadgets"}
	if err := env.categories.UpdateFields(existing.ID, rename); err != nil {
		t.Fatalf("rename failed: %v", err)
	}

	if _, err := svc.Run("", ""); err != nil {
		t.Fatalf("second seed run failed: %v", err)
	}
	renamed, err := env.categories.GetBySlug("electronics")
	if err != nil {
		t.Fatalf("get category failed: %v", err)
	}
	if renamed.Name != "Gadgets" {
		t.Fatalf("seed must not overwrite, name want Gadgets got %s", renamed.Name)
	}
}

func TestSeedAdminCredentials(t *testing.T) {
	env := setupServiceTest(t)
	svc := newSeedService(env)

	if _, err := svc.Run("owner@example.com", "s3cret-pass"); err != nil {
		t.Fatalf("seed run failed: %v", err)
	}

	admin, err := env.admins.GetByEmail("owner@example.com")
	if err != nil {
		t.Fatalf("get admin failed: %v", err)
	}
	if admin == nil {
		t.Fatalf("seeded admin missing")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("s3cret-pass")); err != nil {
		t.Fatalf("password hash mismatch: %v", err)
	}
	if admin.Role != "admin" {
		t.Fatalf("role want admin got %s", admin.Role)
	}
}
