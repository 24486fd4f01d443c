package domain

type User struct {
	Id       UserId
	Username Username
	Fullname string
	Password Password // bcrypt digest, never plaintext
}

// UserRegistration carries a signup request. Password is plaintext here;
// the use case hashes it before the registration is persisted.
type UserRegistration struct {
	Username Username
	Fullname string
	Password Password
}

func NewUserRegistration(p Payload) (UserRegistration, error) {
	const entity = "user registration"

	if err := requireAll(entity, p, "username", "fullname", "password"); err != nil {
		return UserRegistration{}, err
	}

	username, err := stringField(entity, p, "username")
	if err != nil {
		return UserRegistration{}, err
	}
	fullname, err := stringField(entity, p, "fullname")
	if err != nil {
		return UserRegistration{}, err
	}
	password, err := stringField(entity, p, "password")
	if err != nil {
		return UserRegistration{}, err
	}

	return UserRegistration{Username: username, Fullname: fullname, Password: password}, nil
}

// RegisteredUser is the public profile projection returned after
// registration. The password digest is deliberately absent.
type RegisteredUser struct {
	Id       UserId   `json:"id"`
	Username Username `json:"username"`
	Fullname string   `json:"fullname"`
}

// Credentials carries a login request.
type Credentials struct {
	Username Username
	Password Password
}

func NewCredentials(p Payload) (Credentials, error) {
	const entity = "credentials"

	if err := requireAll(entity, p, "username", "password"); err != nil {
		return Credentials{}, err
	}

	username, err := stringField(entity, p, "username")
	if err != nil {
		return Credentials{}, err
	}
	password, err := stringField(entity, p, "password")
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{Username: username, Password: password}, nil
}
