// Package gpg verifies detached OpenPGP signatures over cookbook files,
// for users who exchange signed cookbooks.
package gpg

import (
	"fmt"
	"os"

	"github.com/ProtonMail/go-crypto/openpgp"
)

// Verifier checks detached signatures against an imported keyring
type Verifier struct {
	keyring openpgp.EntityList
}

// NewVerifier creates a verifier with an empty keyring
func NewVerifier() *Verifier {
	return &Verifier{keyring: make(openpgp.EntityList, 0)}
}

// KeyCount returns the number of imported keys
func (v *Verifier) KeyCount() int {
	return len(v.keyring)
}

// ImportKeyFromFile loads public keys from an armored or binary key file
// and appends them to the keyring.
func (v *Verifier) ImportKeyFromFile(path string) error {
	//nolint:gosec // G304: path is the user's key file
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open key file: %w", err)
	}
	//nolint:errcheck // Defer close
	defer f.Close()

	keys, err := openpgp.ReadArmoredKeyRing(f)
	if err != nil {
		// Retry as a binary keyring
		if _, seekErr := f.Seek(0, 0); seekErr != nil {
			return fmt.Errorf("failed to rewind key file: %w", seekErr)
		}
		keys, err = openpgp.ReadKeyRing(f)
		if err != nil {
			return fmt.Errorf("failed to read key file %s: %w", path, err)
		}
	}

	if len(keys) == 0 {
		return fmt.Errorf("no keys found in %s", path)
	}

	v.keyring = append(v.keyring, keys...)
	return nil
}

// VerifyDetached checks the detached signature at sigPath against the
// cookbook at dataPath. Armored signatures (.asc) are tried first, then
// binary (.sig).
func (v *Verifier) VerifyDetached(dataPath, sigPath string) error {
	if len(v.keyring) == 0 {
		return fmt.Errorf("no keys imported, call ImportKeyFromFile first")
	}

	//nolint:gosec // G304: dataPath is the user's cookbook file
	data, err := os.Open(dataPath)
	if err != nil {
		return fmt.Errorf("failed to open cookbook: %w", err)
	}
	//nolint:errcheck // Defer close
	defer data.Close()

	//nolint:gosec // G304: sigPath is the user's signature file
	sig, err := os.Open(sigPath)
	if err != nil {
		return fmt.Errorf("failed to open signature: %w", err)
	}
	//nolint:errcheck // Defer close
	defer sig.Close()

	if _, err := openpgp.CheckArmoredDetachedSignature(v.keyring, data, sig, nil); err == nil {
		return nil
	}

	if _, err := data.Seek(0, 0); err != nil {
		return fmt.Errorf("failed to rewind cookbook: %w", err)
	}
	if _, err := sig.Seek(0, 0); err != nil {
		return fmt.Errorf("failed to rewind signature: %w", err)
	}

	if _, err := openpgp.CheckDetachedSignature(v.keyring, data, sig, nil); err != nil {
		return fmt.Errorf("signature verification failed: %w", err)
	}

	return nil
}
