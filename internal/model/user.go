package model

type RoleName string

const (
	RoleUser      RoleName = "ROLE_USER"
	RoleAdmin     RoleName = "ROLE_ADMIN"
	RoleModerator RoleName = "ROLE_MODERATOR"
)

type Role struct {
	ID       int      `json:"id"`
	RoleName RoleName `json:"roleName"`
}

type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	IsActive  bool   `json:"isActive"`
	Roles     []Role `json:"roles"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Gender    string `json:"gender,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// UserPatch holds the fields UpdateUser may overwrite; nil fields are kept.
type UserPatch struct {
	Email     *string
	IsActive  *bool
	FirstName *string
	LastName  *string
	Phone     *string
	Gender    *string
	AvatarURL *string
}

// Apply merges the non-nil fields of p into u.
func (p UserPatch) Apply(u *User) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&u.Email, p.Email)
	set(&u.FirstName, p.FirstName)
	set(&u.LastName, p.LastName)
	set(&u.Phone, p.Phone)
	set(&u.Gender, p.Gender)
	set(&u.AvatarURL, p.AvatarURL)
	if p.IsActive != nil {
		u.IsActive = *p.IsActive
	}
}

// UserResponse is the wire shape of GET users/me.
type UserResponse struct {
	ID       int64    `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	IsActive bool     `json:"isActive"`
	Roles    []string `json:"roles"`
}

// ToUser numbers roles from 1 in the order the server sent them.
func (r UserResponse) ToUser() User {
	roles := make([]Role, 0, len(r.Roles))
	for i, name := range r.Roles {
		roles = append(roles, Role{ID: i + 1, RoleName: RoleName(name)})
	}
	return User{
		ID:       r.ID,
		Username: r.Username,
		Email:    r.Email,
		IsActive: r.IsActive,
		Roles:    roles,
	}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type SignUpRequest struct {
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Role     []string `json:"role,omitempty"`
}

type Authority struct {
	Authority string `json:"authority"`
}

type JWTResponse struct {
	Token       string      `json:"token"`
	Username    string      `json:"username"`
	Email       string      `json:"email"`
	Enabled     bool        `json:"enabled"`
	IsActive    bool        `json:"isActive"`
	Authorities []Authority `json:"authorities"`
}

type UpdateProfileRequest struct {
	Email           string `json:"email,omitempty"`
	Password        string `json:"password,omitempty"`
	CurrentPassword string `json:"currentPassword,omitempty"`
	FirstName       string `json:"firstName,omitempty"`
	LastName        string `json:"lastName,omitempty"`
	Phone           string `json:"phone,omitempty"`
	Gender          string `json:"gender,omitempty"`
}
