package domain

import "time"

type User struct {
	ID        int       `db:"id"`
	UUID      string    `db:"uuid"`
	Name      string    `db:"name"`
	Point     int       `db:"point"`
	Profile   *string   `db:"profile"`
	PushToken *string   `db:"push_token"`
	Roles     []string  `db:"roles"`
	CreatedAt time.Time `db:"created_at"`
}

type Talent struct {
	ID        int       `db:"id"`
	UserID    int       `db:"user_id"`
	Title     string    `db:"title"`
	Contents  string    `db:"contents"`
	Point     int       `db:"point"`
	Completed bool      `db:"completed"`
	ReqAt     time.Time `db:"req_at"`
	StartAt   time.Time `db:"start_at"`
	EndAt     time.Time `db:"end_at"`
}

// TalentListing is an open talent annotated with the requester's name.
type TalentListing struct {
	Talent
	Name string `db:"name"`
}

// OwnedTalent is a talent of the requesting user with its application's completion time.
type OwnedTalent struct {
	Talent
	CompletedAt *time.Time `db:"completed_at"`
}

type Application struct {
	ID            int        `db:"id"`
	TalentID      int        `db:"talent_id"`
	ContributorID int        `db:"contributor_id"`
	CompletedAt   *time.Time `db:"completed_at"`
}

// CompletedApplication is a finished application with the talent's title and contents.
type CompletedApplication struct {
	Application
	Title    string `db:"title"`
	Contents string `db:"contents"`
}

type DonationPlace struct {
	ID          int       `db:"id" yaml:"-"`
	Title       string    `db:"title" yaml:"title"`
	Contents    string    `db:"contents" yaml:"contents"`
	DueDate     time.Time `db:"due_date" yaml:"due_date"`
	TargetPoint int       `db:"target_point" yaml:"target_point"`
	OwnedPoint  int       `db:"owned_point" yaml:"-"`
	Picture     *string   `db:"picture" yaml:"picture,omitempty"`
}

type Contribution struct {
	ID      int       `db:"id"`
	UserID  int       `db:"user_id"`
	PlaceID int       `db:"place_id"`
	Point   int       `db:"point"`
	Date    time.Time `db:"date"`
}

// UserDonation is a place a user donated to with the user's accumulated contribution.
type UserDonation struct {
	DonationPlace
	ContriPoint int       `db:"contri_point"`
	Date        time.Time `db:"date"`
}

type PointHistory struct {
	ID     int       `db:"id"`
	UserID int       `db:"user_id"`
	Date   time.Time `db:"date"`
	Point  int       `db:"point"`
}
