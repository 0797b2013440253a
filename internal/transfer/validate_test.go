package transfer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterValidation(t *testing.T) {
	cases := []struct {
		name string
		req  RegisterRequest
		msg  string
	}{
		{"bad email", RegisterRequest{Email: "nope", Password: "secret1", ConfirmPassword: "secret1", FullName: "A"}, "Invalid email address"},
		{"short password", RegisterRequest{Email: "a@b.co", Password: "123", ConfirmPassword: "123", FullName: "A"}, "Password must be at least 6 characters"},
		{"mismatch", RegisterRequest{Email: "a@b.co", Password: "secret1", ConfirmPassword: "secret2", FullName: "A"}, "Passwords don't match"},
		{"long password", RegisterRequest{Email: "a@b.co", Password: strings.Repeat("a", 80), ConfirmPassword: strings.Repeat("a", 80), FullName: "A"}, "Password must be at most 72 characters"},
		{"missing name", RegisterRequest{Email: "a@b.co", Password: "secret1", ConfirmPassword: "secret1"}, "fullName is required"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.req)
			if assert.Error(t, err) {
				assert.Equal(t, tc.msg, err.Error())
			}
		})
	}

	assert.NoError(t, Validate(RegisterRequest{Email: "a@b.co", Password: "secret1", ConfirmPassword: "secret1", FullName: "A"}))
}

func TestCreatePostValidation(t *testing.T) {
	err := Validate(CreatePostRequest{Content: "hi"})
	if assert.Error(t, err) {
		assert.Equal(t, "platforms must contain at least 1 item", err.Error())
	}

	err = Validate(CreatePostRequest{Content: "hi", Platforms: []string{"myspace"}})
	if assert.Error(t, err) {
		assert.Equal(t, `Invalid platform "myspace"`, err.Error())
	}

	err = Validate(CreatePostRequest{Content: "hi", Platforms: []string{"twitter"}, MediaURLs: []string{"not a url"}})
	if assert.Error(t, err) {
		assert.Equal(t, "mediaUrls must contain valid URLs", err.Error())
	}

	assert.NoError(t, Validate(CreatePostRequest{Content: "hi", Platforms: []string{"twitter", "linkedin"}}))
}

func TestUpdatePostValidation(t *testing.T) {
	assert.NoError(t, Validate(UpdatePostRequest{}))

	err := Validate(UpdatePostRequest{Platforms: []string{}})
	assert.Error(t, err)

	bad := "archived"
	err = Validate(UpdatePostRequest{Status: &bad})
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "status must be one of")
	}
}

func TestSocialProfileValidation(t *testing.T) {
	negative := -1
	err := Validate(CreateSocialProfileRequest{Platform: "twitter", Username: "@a", Followers: &negative})
	if assert.Error(t, err) {
		assert.Equal(t, "followers must be at least 0", err.Error())
	}

	two := 2
	assert.Error(t, Validate(CreateSocialProfileRequest{Platform: "twitter", Username: "@a", IsConnected: &two}))
	assert.NoError(t, Validate(CreateSocialProfileRequest{Platform: "tiktok", Username: "@a"}))
}

func TestCreatePostToModelDedupesPlatforms(t *testing.T) {
	p := CreatePostRequest{Content: "x", Platforms: []string{"twitter", "twitter", "facebook"}}.ToModel("u1")
	assert.Equal(t, []string{"twitter", "facebook"}, []string(p.Platforms))
	assert.NotNil(t, p.MediaURLs)
	assert.Equal(t, "u1", p.UserID)
}
