package gpg

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestVerifier_ImportKeyFromFile_Nonexistent(t *testing.T) {
	v := NewVerifier()

	err := v.ImportKeyFromFile("/nonexistent/key.asc")
	if err == nil {
		t.Fatal("Expected error for nonexistent file, got nil")
	}
	if !strings.Contains(err.Error(), "failed to open key file") {
		t.Errorf("Expected 'failed to open key file' error, got: %v", err)
	}
}

func TestVerifier_ImportKeyFromFile_Garbage(t *testing.T) {
	v := NewVerifier()
	keyPath := filepath.Join(t.TempDir(), "garbage.asc")
	if err := os.WriteFile(keyPath, []byte("this is not a key"), 0o600); err != nil {
		t.Fatalf("Failed to create test key file: %v", err)
	}

	if err := v.ImportKeyFromFile(keyPath); err == nil {
		t.Error("ImportKeyFromFile() should fail for non-key content")
	}
	if v.KeyCount() != 0 {
		t.Errorf("KeyCount() = %d after failed import, want 0", v.KeyCount())
	}
}

func TestVerifier_ImportKeyFromFile_TruncatedArmor(t *testing.T) {
	v := NewVerifier()
	keyPath := filepath.Join(t.TempDir(), "truncated.asc")
	keyContent := `-----BEGIN PGP PUBLIC KEY BLOCK-----

mQENBGPexAMBCAC1kLz...
-----END PGP PUBLIC KEY BLOCK-----`
	if err := os.WriteFile(keyPath, []byte(keyContent), 0o600); err != nil {
		t.Fatalf("Failed to create test key file: %v", err)
	}

	if err := v.ImportKeyFromFile(keyPath); err == nil {
		t.Error("ImportKeyFromFile() should fail for a truncated key block")
	}
}

func TestVerifier_VerifyDetached_NoKeys(t *testing.T) {
	v := NewVerifier()

	err := v.VerifyDetached("cookbook.txt", "cookbook.txt.asc")
	if err == nil {
		t.Fatal("VerifyDetached() should fail with an empty keyring")
	}
	if !strings.Contains(err.Error(), "no keys imported") {
		t.Errorf("Expected 'no keys imported' error, got: %v", err)
	}
}

func TestVerifier_VerifyDetached_MissingFiles(t *testing.T) {
	v := NewVerifier()
	v.keyring = append(v.keyring, nil) // non-empty keyring to pass the guard

	tmpDir := t.TempDir()
	dataPath := filepath.Join(tmpDir, "kokbok.txt")
	if err := os.WriteFile(dataPath, []byte("[Recept]\nToast\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := v.VerifyDetached(filepath.Join(tmpDir, "missing.txt"), "x.asc"); err == nil {
		t.Error("VerifyDetached() should fail for a missing cookbook")
	}
	if err := v.VerifyDetached(dataPath, filepath.Join(tmpDir, "missing.asc")); err == nil {
		t.Error("VerifyDetached() should fail for a missing signature")
	}
}

func TestVerifier_VerifyDetached_GarbageSignature(t *testing.T) {
	v := NewVerifier()
	v.keyring = append(v.keyring, nil)

	tmpDir := t.TempDir()
	dataPath := filepath.Join(tmpDir, "kokbok.txt")
	sigPath := filepath.Join(tmpDir, "kokbok.txt.sig")
	if err := os.WriteFile(dataPath, []byte("[Recept]\nToast\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(sigPath, []byte("not a signature"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := v.VerifyDetached(dataPath, sigPath); err == nil {
		t.Error("VerifyDetached() should fail for garbage signature data")
	}
}
