package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDirection(t *testing.T) {
	cases := map[string]Direction{
		"up":    DirectionUp,
		"down":  DirectionDown,
		"left":  DirectionLeft,
		"right": DirectionRight,
		"UP":    DirectionUp,
		"Down":  DirectionDown,
		"LeFt":  DirectionLeft,
		"RIGHT": DirectionRight,
	}
	for input, want := range cases {
		dir, err := ParseDirection(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, dir, "input %q", input)
	}

	t.Run("Unknown Direction Is An Error", func(t *testing.T) {
		for _, input := range []string{"", "diagonal", "upwards", "north"} {
			_, err := ParseDirection(input)
			assert.ErrorIs(t, err, ErrInvalidDirection, "input %q", input)
		}
	})
}

func TestDirection_WheelButton(t *testing.T) {
	assert.Equal(t, 4, DirectionUp.WheelButton())
	assert.Equal(t, 5, DirectionDown.WheelButton())
	assert.Equal(t, 6, DirectionLeft.WheelButton())
	assert.Equal(t, 7, DirectionRight.WheelButton())
}

func TestParseSearchType(t *testing.T) {
	assert.Equal(t, SearchName, ParseSearchType("name"))
	assert.Equal(t, SearchClass, ParseSearchType("Class"))
	assert.Equal(t, SearchClassName, ParseSearchType("CLASSNAME"))
	assert.Equal(t, SearchAny, ParseSearchType("any"))

	t.Run("Unknown Type Falls Back To Any", func(t *testing.T) {
		// Lenient by contract, unlike direction parsing.
		assert.Equal(t, SearchAny, ParseSearchType(""))
		assert.Equal(t, SearchAny, ParseSearchType("title"))
		assert.Equal(t, SearchAny, ParseSearchType("pid"))
	})
}

func TestSearchType_Flag(t *testing.T) {
	assert.Equal(t, "--name", SearchName.Flag())
	assert.Equal(t, "--class", SearchClass.Flag())
	assert.Equal(t, "--classname", SearchClassName.Flag())
	assert.Equal(t, "", SearchAny.Flag())
}
