package kratos

import (
	"strings"

	kratosclient "github.com/ory/kratos-client-go"

	"github.com/Sowjanyakambhampati/forumctl/internal/domain"
)

// mapIdentity converts a Kratos identity into the client's User shape.
// Traits are schema-defined per deployment, so every field is read
// defensively; a missing username falls back to the email's local part.
func mapIdentity(identity *kratosclient.Identity) *domain.User {
	user := &domain.User{
		ID:   identity.Id,
		Role: domain.RoleUser,
	}

	traits := traitsFrom(identity.Traits)
	user.Email = stringTrait(traits, "email")
	user.Username = stringTrait(traits, "username")
	user.FullName = stringTrait(traits, "name")
	user.AvatarURL = stringTrait(traits, "avatar_url")

	if role := stringTrait(traits, "role"); role != "" {
		user.Role = domain.Role(role)
	}
	if user.Username == "" && user.Email != "" {
		user.Username, _, _ = strings.Cut(user.Email, "@")
	}
	if identity.CreatedAt != nil {
		user.CreatedAt = *identity.CreatedAt
	}

	return user
}

// traitsFrom returns the identity traits as a map, empty when the traits
// are absent or not an object.
func traitsFrom(raw interface{}) map[string]interface{} {
	if traits, ok := raw.(map[string]interface{}); ok {
		out := make(map[string]interface{}, len(traits))
		for k, v := range traits {
			out[k] = v
		}
		return out
	}
	return map[string]interface{}{}
}

func stringTrait(traits map[string]interface{}, key string) string {
	if val, ok := traits[key]; ok {
		if s, ok := val.(string); ok {
			return s
		}
	}
	return ""
}
