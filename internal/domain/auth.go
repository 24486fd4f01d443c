package domain

// TokenClaims is the identity payload embedded in access and refresh
// tokens.
type TokenClaims struct {
	Id       UserId
	Username Username
}

// NewAuthentication is the token pair issued on a successful login.
type NewAuthentication struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// RefreshToken identifies a persisted, revocable refresh token.
type RefreshToken struct {
	Token string
}

func NewRefreshToken(p Payload) (RefreshToken, error) {
	const entity = "refresh token"

	if err := requireAll(entity, p, "refreshToken"); err != nil {
		return RefreshToken{}, err
	}

	token, err := stringField(entity, p, "refreshToken")
	if err != nil {
		return RefreshToken{}, err
	}

	return RefreshToken{Token: token}, nil
}
