package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_CollectsEveryField(t *testing.T) {
	err := Validate(VenueInput{Phone: "12"})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	for _, field := range []string{"name", "city", "state", "address", "genres", "phone"} {
		assert.Contains(t, verr.Fields, field)
	}
	assert.Equal(t, "Invalid phone number.", verr.Fields["phone"])
	assert.Contains(t, err.Error(), "address: This field is required.")
}

func TestValidate_PhoneFormats(t *testing.T) {
	for _, phone := range []string{"123-123-1234", "1231231234", "(415) 555-0100", "415.555.0100"} {
		in := validVenueInput()
		in.Phone = phone
		assert.NoError(t, Validate(in), phone)
	}
}

func TestValidate_StateIsCaseInsensitive(t *testing.T) {
	in := validArtistInput()
	in.State = "ny"
	require.NoError(t, Validate(in))
	assert.Equal(t, "NY", in.toModel().State)
}

func TestValidationError_AddKeepsFirstMessage(t *testing.T) {
	verr := &ValidationError{}
	assert.False(t, verr.HasErrors())
	verr.Add("genres", "first")
	verr.Add("genres", "second")
	assert.True(t, verr.HasErrors())
	assert.Equal(t, "first", verr.Fields["genres"])
}
