// Package models defines the in-memory domain records shared by the stores,
// services and transport.
package models

import "slices"

type SkillLevel string

const (
	SkillLevelBeginner     SkillLevel = "Beginner"
	SkillLevelIntermediate SkillLevel = "Intermediate"
	SkillLevelExpert       SkillLevel = "Expert"
)

type Urgency string

const (
	UrgencyLow    Urgency = "Low"
	UrgencyMedium Urgency = "Medium"
	UrgencyHigh   Urgency = "High"
)

// Skill is identified by Name within a user's list. Level applies to offered
// skills, Urgency to wanted ones.
type Skill struct {
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Level       SkillLevel `json:"level,omitempty"`
	Urgency     Urgency    `json:"urgency,omitempty"`
}

type Review struct {
	Author      string `json:"author"`
	AuthorImage string `json:"authorImage"`
	Rating      int    `json:"rating"`
	Comment     string `json:"comment"`
}

// Social link platform keys.
const (
	SocialX         = "x"
	SocialLinkedIn  = "linkedIn"
	SocialGitHub    = "github"
	SocialTikTok    = "tiktok"
	SocialInstagram = "instagram"
	SocialYouTube   = "youtube"
	SocialGmail     = "gmail"
)

// User is an identity plus its public profile.
//
// Password is compared in plaintext; it is never sent back to clients.
// ProfilePicture is empty when absent.
type User struct {
	ID                     int64             `json:"id"`
	Email                  string            `json:"email"`
	Password               string            `json:"-"`
	Name                   string            `json:"name"`
	ProfilePicture         string            `json:"profilePicture,omitempty"`
	Location               string            `json:"location"`
	Bio                    string            `json:"bio"`
	SkillsOffered          []Skill           `json:"skillsOffered"`
	SkillsWanted           []Skill           `json:"skillsWanted"`
	Reviews                []Review          `json:"reviews"`
	IsVerified             bool              `json:"isVerified"`
	Rating                 float64           `json:"rating"`
	HasOnboarded           bool              `json:"hasOnboarded"`
	IsEmailVerified        bool              `json:"isEmailVerified"`
	EmailVerificationToken string            `json:"-"`
	IsAI                   bool              `json:"isAI,omitempty"`
	SocialLinks            map[string]string `json:"socialLinks,omitempty"`
}

// Clone returns a deep copy so callers never share slices or maps with a store.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	c.SkillsOffered = slices.Clone(u.SkillsOffered)
	c.SkillsWanted = slices.Clone(u.SkillsWanted)
	c.Reviews = slices.Clone(u.Reviews)
	if u.SocialLinks != nil {
		c.SocialLinks = make(map[string]string, len(u.SocialLinks))
		for k, v := range u.SocialLinks {
			c.SocialLinks[k] = v
		}
	}
	return &c
}

// Profile holds the user-editable part of a User, as submitted by the
// onboarding wizard or the settings page.
type Profile struct {
	Name           string            `json:"name"`
	ProfilePicture string            `json:"profilePicture,omitempty"`
	Location       string            `json:"location"`
	Bio            string            `json:"bio"`
	SkillsOffered  []Skill           `json:"skillsOffered"`
	SkillsWanted   []Skill           `json:"skillsWanted"`
	SocialLinks    map[string]string `json:"socialLinks,omitempty"`
}

// ApplyProfile overwrites the profile fields of u with p.
func (u *User) ApplyProfile(p Profile) {
	u.Name = p.Name
	u.ProfilePicture = p.ProfilePicture
	u.Location = p.Location
	u.Bio = p.Bio
	u.SkillsOffered = slices.Clone(p.SkillsOffered)
	u.SkillsWanted = slices.Clone(p.SkillsWanted)
	u.SocialLinks = nil
	if len(p.SocialLinks) > 0 {
		u.SocialLinks = make(map[string]string, len(p.SocialLinks))
		for k, v := range p.SocialLinks {
			u.SocialLinks[k] = v
		}
	}
}
