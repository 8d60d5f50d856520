package auth

// Service resolves raw bearer tokens into identities. It is the single
// entry point the HTTP layer uses; decode and resolution failures come
// back as ErrMalformedToken, ErrInvalidToken or ErrResolutionFailed.
type Service struct {
	decoder *Decoder
}

// NewService creates an auth Service around the given Decoder.
func NewService(decoder *Decoder) *Service {
	return &Service{decoder: decoder}
}

// ResolveToken decodes a token and resolves its claims into an Identity.
func (s *Service) ResolveToken(token string) (*Identity, error) {
	claims, err := s.decoder.Decode(token)
	if err != nil {
		return nil, err
	}
	return ResolveIdentity(claims)
}
