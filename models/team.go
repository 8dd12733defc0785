package models

import "time"

// TeamMember carries the union of contact fields seen across site
// revisions; all of them are optional except the core profile.
type TeamMember struct {
	ID          string    `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string    `bson:"name" json:"name"`
	Role        string    `bson:"role" json:"role"`
	Description string    `bson:"description" json:"description"`
	ImageURL    string    `bson:"imageUrl" json:"imageUrl"`
	Email       string    `bson:"email,omitempty" json:"email,omitempty"`
	Phone       string    `bson:"phone,omitempty" json:"phone,omitempty"`
	LinkedinURL string    `bson:"linkedinUrl,omitempty" json:"linkedinUrl,omitempty"`
	TwitterURL  string    `bson:"twitterUrl,omitempty" json:"twitterUrl,omitempty"`
	FacebookURL string    `bson:"facebookUrl,omitempty" json:"facebookUrl,omitempty"`
	TiktokURL   string    `bson:"tiktokUrl,omitempty" json:"tiktokUrl,omitempty"`
	GithubURL   string    `bson:"githubUrl,omitempty" json:"githubUrl,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

type CreateTeamMember struct {
	Name        string `bson:"name" json:"name"`
	Role        string `bson:"role" json:"role"`
	Description string `bson:"description" json:"description"`
	ImageURL    string `bson:"imageUrl" json:"imageUrl"`
	Email       string `bson:"email,omitempty" json:"email,omitempty"`
	Phone       string `bson:"phone,omitempty" json:"phone,omitempty"`
	LinkedinURL string `bson:"linkedinUrl,omitempty" json:"linkedinUrl,omitempty"`
	TwitterURL  string `bson:"twitterUrl,omitempty" json:"twitterUrl,omitempty"`
	FacebookURL string `bson:"facebookUrl,omitempty" json:"facebookUrl,omitempty"`
	TiktokURL   string `bson:"tiktokUrl,omitempty" json:"tiktokUrl,omitempty"`
	GithubURL   string `bson:"githubUrl,omitempty" json:"githubUrl,omitempty"`
}
