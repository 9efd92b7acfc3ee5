package keywords_test

import (
	"phishlens/internal/keywords"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContainsSuspiciousPhrase(t *testing.T) {
	s := keywords.New(nil)

	cases := []struct {
		name    string
		body    string
		subject string
		want    bool
	}{
		{name: "phrase in body", body: "Please reset your password now", subject: "Security Alert", want: true},
		{name: "phrase in subject only", body: "See below.", subject: "ACTION REQUIRED: mailbox full", want: true},
		{name: "substring match", body: "you need to reverify", subject: "", want: true},
		{name: "benign", body: "Lunch tomorrow?", subject: "Re: plans", want: false},
		{name: "empty", body: "", subject: "", want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, s.ContainsSuspiciousPhrase(tc.body, tc.subject))
		})
	}
}

func TestMatches(t *testing.T) {
	s := keywords.New(nil)
	require.Equal(t,
		[]string{"reset your password", "security alert", "reset password", "urgent"},
		s.Matches("URGENT: reset your password / reset password", "Security Alert"))
	require.Empty(t, s.Matches("Lunch tomorrow?", "Re: plans"))
}

func TestNew_CustomPhrases(t *testing.T) {
	phrases := []string{"Überweisung", "", "Konto gesperrt"}
	s := keywords.New(phrases)

	require.Equal(t, []string{"überweisung", "konto gesperrt"}, s.Phrases())
	require.True(t, s.ContainsSuspiciousPhrase("Ihr KONTO GESPERRT", ""))
	require.False(t, s.ContainsSuspiciousPhrase("please verify", "urgent"))

	// the scorer keeps its own copy
	phrases[0] = "lunch"
	require.False(t, s.ContainsSuspiciousPhrase("lunch", ""))
}

func TestDefaultPhrases(t *testing.T) {
	p := keywords.DefaultPhrases()
	require.Len(t, p, 40)
	require.Equal(t, "verify", p[0])

	p[0] = "changed"
	require.Equal(t, "verify", keywords.DefaultPhrases()[0])
	require.Equal(t, keywords.DefaultPhrases(), keywords.New(nil).Phrases())
}

func TestNew_EmptyListUsesDefaults(t *testing.T) {
	for name, phrases := range map[string][]string{
		"nil":    nil,
		"empty":  {},
		"blanks": {"", "  "},
	} {
		t.Run(name, func(t *testing.T) {
			s := keywords.New(phrases)
			require.Equal(t, keywords.DefaultPhrases(), s.Phrases())
			require.True(t, s.ContainsSuspiciousPhrase("Please reset your password now", ""))
		})
	}
}
