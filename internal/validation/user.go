package validation

// CreateUserInput is the schema for creating a user record. The ID must
// already exist: it is supplied by the external auth provider.
type CreateUserInput struct {
	ID        string  `json:"id" validate:"required,uuid"`
	Email     string  `json:"email" validate:"required,email,max=255"`
	FullName  *string `json:"fullName" validate:"omitempty,max=255"`
	AvatarURL *string `json:"avatarUrl" validate:"omitempty,url,max=500"`
	Role      string  `json:"role" validate:"omitempty,oneof=admin user"`
}

// UpdateUserInput is the schema for updating a user record
type UpdateUserInput struct {
	FullName  *string `json:"fullName" validate:"omitempty,max=255"`
	AvatarURL *string `json:"avatarUrl" validate:"omitempty,url,max=500"`
	Role      *string `json:"role" validate:"omitempty,oneof=admin user"`
}

// CreateUserProfileInput is the schema for the optional profile sub-record
type CreateUserProfileInput struct {
	ID            string  `json:"id" validate:"required,uuid"`
	Bio           *string `json:"bio" validate:"omitempty,max=500"`
	Website       *string `json:"website" validate:"omitempty,url,max=500"`
	Location      *string `json:"location" validate:"omitempty,max=100"`
	TwitterHandle *string `json:"twitterHandle" validate:"omitempty,max=50"`
	GithubHandle  *string `json:"githubHandle" validate:"omitempty,max=50"`
}

// UpdateUserProfileInput is the schema for profile updates
type UpdateUserProfileInput struct {
	Bio           *string `json:"bio" validate:"omitempty,max=500"`
	Website       *string `json:"website" validate:"omitempty,url,max=500"`
	Location      *string `json:"location" validate:"omitempty,max=100"`
	TwitterHandle *string `json:"twitterHandle" validate:"omitempty,max=50"`
	GithubHandle  *string `json:"githubHandle" validate:"omitempty,max=50"`
}

// CreateUser validates input for user creation
func CreateUser(in *CreateUserInput) error {
	return structOf(in)
}

// UpdateUser validates input for user updates
func UpdateUser(in *UpdateUserInput) error {
	return structOf(in)
}

// CreateUserProfile validates input for profile creation
func CreateUserProfile(in *CreateUserProfileInput) error {
	return structOf(in)
}

// UpdateUserProfile validates input for profile updates
func UpdateUserProfile(in *UpdateUserProfileInput) error {
	return structOf(in)
}
