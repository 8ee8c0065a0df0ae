package bioguide

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateOptions(t *testing.T) {
	require.NoError(t, ValidatePosition(""))
	require.NoError(t, ValidatePosition(PositionContinentalCongress))
	require.ErrorIs(t, ValidatePosition("Astronaut"), ErrInvalidOption)

	require.NoError(t, ValidateParty("Whig"))
	require.NoError(t, ValidateParty("Democrat;Republican"))
	require.NoError(t, ValidateParty("Democratic and Union Labor"))
	require.ErrorIs(t, ValidateParty("whig"), ErrInvalidOption)

	require.NoError(t, ValidateState("WI"))
	require.NoError(t, ValidateState("OL"))
	require.ErrorIs(t, ValidateState("ZZ"), ErrInvalidOption)
}

func TestSearchQueryValidatesBeforeSubmitting(t *testing.T) {
	query := SearchQuery{LastName: "Lincoln", Party: "Pirate"}
	require.ErrorIs(t, query.Validate(), ErrInvalidOption)
}

func TestSearchQueryOmitsEmptyFields(t *testing.T) {
	query := SearchQuery{LastName: "Adams", YearOrCongress: "6"}
	values := query.formValues("token123")

	require.Equal(t, map[string]string{
		"submitButton":               "submit",
		"__RequestVerificationToken": "token123",
		"LastName":                   "Adams",
		"YearOrCongress":             "6",
	}, values)
}
