package kratos

import (
	"testing"
	"time"

	kratosclient "github.com/ory/kratos-client-go"
	"github.com/stretchr/testify/assert"

	"github.com/Sowjanyakambhampati/forumctl/internal/domain"
)

func TestMapIdentity(t *testing.T) {
	created := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	identity := &kratosclient.Identity{
		Id: "id-123",
		Traits: map[string]interface{}{
			"email":      "alice@example.com",
			"username":   "alice",
			"name":       "Alice Example",
			"avatar_url": "https://cdn.example.com/a.png",
		},
		CreatedAt: &created,
	}

	user := mapIdentity(identity)
	assert.Equal(t, "id-123", user.ID)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "Alice Example", user.FullName)
	assert.Equal(t, "https://cdn.example.com/a.png", user.AvatarURL)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.Equal(t, created, user.CreatedAt)
}

func TestMapIdentityUsernameFallsBackToEmailLocalPart(t *testing.T) {
	identity := &kratosclient.Identity{
		Id:     "id-456",
		Traits: map[string]interface{}{"email": "bob.smith@example.com"},
	}

	user := mapIdentity(identity)
	assert.Equal(t, "bob.smith", user.Username)
}

func TestMapIdentityRoleTrait(t *testing.T) {
	identity := &kratosclient.Identity{
		Id: "id-789",
		Traits: map[string]interface{}{
			"email": "mod@example.com",
			"role":  "MODERATOR",
		},
	}

	user := mapIdentity(identity)
	assert.Equal(t, domain.Role("MODERATOR"), user.Role)
}

func TestMapIdentityToleratesMalformedTraits(t *testing.T) {
	tests := []struct {
		name   string
		traits interface{}
	}{
		{"nil traits", nil},
		{"non-object traits", "oops"},
		{"non-string values", map[string]interface{}{"email": 42, "username": true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := mapIdentity(&kratosclient.Identity{Id: "x", Traits: tt.traits})
			assert.Equal(t, "x", user.ID)
			assert.Empty(t, user.Email)
			assert.Empty(t, user.Username)
			assert.Equal(t, domain.RoleUser, user.Role)
		})
	}
}

func TestOAuthURL(t *testing.T) {
	p := &Provider{publicURL: "http://127.0.0.1:4433"}

	got := p.OAuthURL("google")
	assert.Contains(t, got, "http://127.0.0.1:4433/self-service/login/browser?")
	assert.Contains(t, got, "via=google")
	assert.Contains(t, got, "return_to=http%3A%2F%2F127.0.0.1%3A4433")
}
