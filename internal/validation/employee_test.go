package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const passwordMsg = `"password" must be between 6-30 characters long, include at least one uppercase letter, one lowercase letter, and one digit.`

func validEmployee() EmployeeInput {
	return EmployeeInput{
		Username: "nguyen",
		Password: "Abcdef1",
		Name:     "Nguyen Van A",
		Phone:    "0123456789",
		Role:     "staff",
		Position: "waiter",
		HireDate: "2023-10-01",
	}
}

func TestValidateEmployeeOK(t *testing.T) {
	require.Nil(t, ValidateEmployee(validEmployee()))
}

func TestValidateEmployeePassword(t *testing.T) {
	cases := []struct {
		name     string
		password string
		wantOK   bool
	}{
		{"valid", "Abcdef1", true},
		{"valid long", "Abcdefghij123456789012345678X0", true},
		{"too short", "Ab1", false},
		{"too long", "Abcdefghij123456789012345678X01", false},
		{"no digit", "Abcdefg", false},
		{"no uppercase", "abcdef1", false},
		{"no lowercase", "ABCDEF1", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validEmployee()
			in.Password = tc.password
			err := ValidateEmployee(in)
			if tc.wantOK {
				assert.Nil(t, err)
				return
			}
			require.NotNil(t, err)
			assert.Equal(t, "password", err.Field)
			assert.Equal(t, passwordMsg, err.Message)
		})
	}
}

func TestValidateEmployeePhone(t *testing.T) {
	cases := []struct {
		name   string
		phone  string
		wantOK bool
	}{
		{"valid", "0123456789", true},
		{"too short", "12345", false},
		{"non digit", "abc1234567", false},
		{"digit with dash", "0123-45678", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validEmployee()
			in.Phone = tc.phone
			err := ValidateEmployee(in)
			if tc.wantOK {
				assert.Nil(t, err)
				return
			}
			require.NotNil(t, err)
			assert.Equal(t, phoneMessage, err.Message)
		})
	}
}

func TestValidateEmployeeHireDate(t *testing.T) {
	for _, bad := range []string{"01-10-2023", "2023/10/01", "2023-13-01", "yesterday"} {
		in := validEmployee()
		in.HireDate = bad
		err := ValidateEmployee(in)
		require.NotNil(t, err, bad)
		assert.Equal(t, hireDateMessage, err.Message)
	}
}

func TestValidateEmployeeRequiredAndOrder(t *testing.T) {
	in := EmployeeInput{}
	err := ValidateEmployee(in)
	require.NotNil(t, err)
	// first declared field wins when everything is missing
	assert.Equal(t, "username", err.Field)
	assert.Equal(t, `"username" is required`, err.Message)

	in = validEmployee()
	in.Username = "abc"
	err = ValidateEmployee(in)
	require.NotNil(t, err)
	assert.Equal(t, `"username" length must be at least 4 characters long`, err.Message)

	in = validEmployee()
	in.Password = "weak"
	in.Phone = "bad"
	err = ValidateEmployee(in)
	require.NotNil(t, err)
	// password is declared before phone
	assert.Equal(t, "password", err.Field)
}

func TestValidatePasswordChange(t *testing.T) {
	require.Nil(t, ValidatePasswordChange("Abcdef1"))

	err := ValidatePasswordChange("weak")
	require.NotNil(t, err)
	assert.Equal(t, `"newPassword" must be between 6-30 characters long, include at least one uppercase letter, one lowercase letter, and one digit.`, err.Message)

	err = ValidatePasswordChange("")
	require.NotNil(t, err)
	assert.Equal(t, `"newPassword" is required`, err.Message)
}
