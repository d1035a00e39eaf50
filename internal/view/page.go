// Package view renders the profile board as templ components.
package view

import (
	"strconv"

	"github.com/a-h/templ"

	"github.com/zhouzirui/profile-board/backend/internal/model/profile"
)

//go:generate templ generate

const bootstrapCSS = "https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css"

// PageData is the read-only snapshot a single render works from.
type PageData struct {
	Profiles []profile.Profile
	// Name echoes the rejected input back into the form.
	Name string
	// Error is the inline validation message; empty when the last add succeeded.
	Error string
}

func cardID(id int) string {
	return "profile-" + strconv.Itoa(id)
}

func likeURL(id int) templ.SafeURL {
	return templ.SafeURL("/profiles/" + strconv.Itoa(id) + "/like")
}
