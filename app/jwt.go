package app

import (
	"context"
	"crypto/ecdsa"
	"crypto/rand"
	"crypto/rsa"
	"fmt"

	"github.com/golang-jwt/jwt/v4"
	"github.com/lestrrat-go/jwx/jwa"
	"github.com/lestrrat-go/jwx/jwk"
	"github.com/sirupsen/logrus"
)

var (
	ErrNoSuitableSigningKey = fmt.Errorf("no suitable private key found in session key set")
	ErrUnknownKeyID         = fmt.Errorf("unknown key id in session token")
)

// sessionSigner signs and verifies the locally-issued session JWTs that wrap
// the remote API's bearer credential. Keys come from a JWK set file; when the
// file is absent an ephemeral RSA key is generated, which means sessions do
// not survive a process restart.
type sessionSigner struct {
	keys jwk.Set
}

func newSessionSigner(keysFile string) (*sessionSigner, error) {
	set, err := jwk.ReadFile(keysFile)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"file":  keysFile,
			"error": err,
		}).Warn("session key set unavailable, generating an ephemeral key")
		set, err = ephemeralKeySet()
		if err != nil {
			return nil, err
		}
	}

	signer := &sessionSigner{keys: set}
	if _, _, _, err := signer.signingKey(); err != nil {
		return nil, err
	}
	return signer, nil
}

func ephemeralKeySet() (jwk.Set, error) {
	raw, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session key: %w", err)
	}
	key, err := jwk.New(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to wrap session key: %w", err)
	}
	if err := key.Set(jwk.KeyIDKey, "session-ephemeral"); err != nil {
		return nil, err
	}
	set := jwk.NewSet()
	set.Add(key)
	return set, nil
}

// Sign produces a compact JWT over the claims with the set's first usable
// private key, recording the key id in the header.
func (s *sessionSigner) Sign(claims jwt.MapClaims) (string, error) {
	raw, keyID, method, err := s.signingKey()
	if err != nil {
		return "", err
	}

	token := &jwt.Token{
		Header: map[string]interface{}{
			"typ": "JWT",
			"alg": method.Alg(),
			"kid": keyID,
		},
		Claims: claims,
		Method: method,
	}
	return token.SignedString(raw)
}

// Parse verifies a session token against the key set and returns its claims.
func (s *sessionSigner) Parse(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		keyID, ok := token.Header["kid"].(string)
		if !ok {
			return nil, fmt.Errorf("expecting JWT header to have 'kid'")
		}

		key, found := s.keys.LookupKeyID(keyID)
		if !found {
			return nil, ErrUnknownKeyID
		}
		var raw interface{}
		if err := key.Raw(&raw); err != nil {
			return nil, fmt.Errorf("failed to get raw key: %w", err)
		}

		// The set holds private keys; verification wants the public half.
		switch k := raw.(type) {
		case *rsa.PrivateKey:
			return &k.PublicKey, nil
		case *ecdsa.PrivateKey:
			return &k.PublicKey, nil
		default:
			return raw, nil
		}
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid session token")
	}
	return claims, nil
}

// PublicJWKS renders the public half of the key set for /.well-known.
func (s *sessionSigner) PublicJWKS() (jwk.Set, error) {
	return jwk.PublicSetOf(s.keys)
}

// signingKey returns the first private key in the set that can sign.
func (s *sessionSigner) signingKey() (interface{}, string, jwt.SigningMethod, error) {
	ctx := context.Background()

	for it := s.keys.Iterate(ctx); it.Next(ctx); {
		key, ok := it.Pair().Value.(jwk.Key)
		if !ok {
			continue
		}
		if !canUseForSigning(key) {
			continue
		}

		var raw interface{}
		if err := key.Raw(&raw); err != nil {
			return nil, "", nil, fmt.Errorf("failed to get raw key: %w", err)
		}
		keyID := key.KeyID()
		if keyID == "" {
			keyID = "session-0"
		}
		return raw, keyID, signingMethodFor(key), nil
	}
	return nil, "", nil, ErrNoSuitableSigningKey
}

func canUseForSigning(key jwk.Key) bool {
	switch key.KeyType() {
	case jwa.RSA:
		if rsaKey, ok := key.(jwk.RSAPrivateKey); ok {
			return rsaKey.D() != nil
		}
	case jwa.EC:
		if ecKey, ok := key.(jwk.ECDSAPrivateKey); ok {
			return ecKey.D() != nil
		}
	}
	return false
}

func signingMethodFor(key jwk.Key) jwt.SigningMethod {
	switch key.KeyType() {
	case jwa.EC:
		return jwt.SigningMethodES256
	default:
		return jwt.SigningMethodRS256
	}
}
