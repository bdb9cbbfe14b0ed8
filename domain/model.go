package domain

import (
	"encoding/json"
	"io"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRole string

const (
	Guest UserRole = "guest"
	Host  UserRole = "host"
	Admin UserRole = "admin"
)

// StatusRequested marks a profile carrying a pending role-upgrade request.
const StatusRequested = "Requested"

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email     string             `bson:"email" json:"email"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	Image     string             `bson:"image,omitempty" json:"image,omitempty"`
	Role      UserRole           `bson:"role,omitempty" json:"role,omitempty"`
	Status    string             `bson:"status,omitempty" json:"status,omitempty"`
	Timestamp time.Time          `bson:"timestamp,omitempty" json:"timestamp,omitempty"`
}

// HostInfo is the host identity embedded in a room document.
type HostInfo struct {
	Name  string `bson:"name,omitempty" json:"name,omitempty"`
	Image string `bson:"image,omitempty" json:"image,omitempty"`
	Email string `bson:"email" json:"email"`
}

type GuestInfo struct {
	Name  string `bson:"name,omitempty" json:"name,omitempty"`
	Image string `bson:"image,omitempty" json:"image,omitempty"`
	Email string `bson:"email" json:"email"`
}

type Room struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Location    string             `bson:"location,omitempty" json:"location,omitempty"`
	Category    string             `bson:"category,omitempty" json:"category,omitempty"`
	Title       string             `bson:"title,omitempty" json:"title,omitempty"`
	From        time.Time          `bson:"from,omitempty" json:"from,omitempty"`
	To          time.Time          `bson:"to,omitempty" json:"to,omitempty"`
	Price       float64            `bson:"price" json:"price"`
	Guests      int                `bson:"guests,omitempty" json:"guests,omitempty"`
	Bedrooms    int                `bson:"bedrooms,omitempty" json:"bedrooms,omitempty"`
	Bathrooms   int                `bson:"bathrooms,omitempty" json:"bathrooms,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Host        HostInfo           `bson:"host" json:"host"`
	Booked      bool               `bson:"booked" json:"booked"`
}

type Booking struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	RoomID        string             `bson:"roomId" json:"roomId"`
	Title         string             `bson:"title,omitempty" json:"title,omitempty"`
	Image         string             `bson:"image,omitempty" json:"image,omitempty"`
	Location      string             `bson:"location,omitempty" json:"location,omitempty"`
	Guest         GuestInfo          `bson:"guest" json:"guest"`
	Host          string             `bson:"host" json:"host"`
	Price         float64            `bson:"price" json:"price"`
	Date          time.Time          `bson:"date" json:"date"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
}

// SaleRecord is the {date, price} projection the aggregator reads.
type SaleRecord struct {
	Date  time.Time `bson:"date" json:"date"`
	Price float64   `bson:"price" json:"price"`
}

type Claims struct {
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}

// UpsertOutcome tags what UpsertProfile actually did with the stored document.
type UpsertOutcome string

const (
	OutcomeCreated     UpsertOutcome = "Created"
	OutcomeOverwritten UpsertOutcome = "Overwritten"
	OutcomeUnchanged   UpsertOutcome = "Unchanged"
)

type UpsertResult struct {
	Outcome UpsertOutcome `json:"outcome"`
	User    *User         `json:"user"`
}

type RoleUpdate struct {
	Role   UserRole `json:"role"`
	Status string   `json:"status,omitempty"`
}

// ChartData rows mix a day/month label with a price, one row per booking,
// behind a header row. Serialized verbatim for the frontend chart widget.
type ChartData [][]interface{}

type AdminStat struct {
	TotalUsers    int64     `json:"totalUsers"`
	TotalRooms    int64     `json:"totalRooms"`
	TotalBookings int       `json:"totalBookings"`
	TotalSale     float64   `json:"totalSale"`
	ChartData     ChartData `json:"chartData"`
}

type HostStat struct {
	TotalRooms    int64     `json:"totalRooms"`
	TotalBookings int       `json:"totalBookings"`
	TotalSale     float64   `json:"totalSale"`
	HostSince     time.Time `json:"hostSince"`
	ChartData     ChartData `json:"chartData"`
}

type GuestStat struct {
	TotalBookings int       `json:"totalBookings"`
	TotalSpent    float64   `json:"totalSpent"`
	GuestSince    time.Time `json:"guestSince"`
	ChartData     ChartData `json:"chartData"`
}

func (o *User) ToJSON(w io.Writer) error {
	e := json.NewEncoder(w)
	return e.Encode(o)
}

func (o *User) FromJSON(r io.Reader) error {
	d := json.NewDecoder(r)
	return d.Decode(o)
}

func (o *Room) ToJSON(w io.Writer) error {
	e := json.NewEncoder(w)
	return e.Encode(o)
}

func (o *Room) FromJSON(r io.Reader) error {
	d := json.NewDecoder(r)
	return d.Decode(o)
}

func (o *Booking) ToJSON(w io.Writer) error {
	e := json.NewEncoder(w)
	return e.Encode(o)
}

func (o *Booking) FromJSON(r io.Reader) error {
	d := json.NewDecoder(r)
	return d.Decode(o)
}
