package action

import "encoding/json"

// Type discriminates the action variants. The string values are the tokens
// stored in block settings and surfaced in generated markup.
type Type string

const (
	TypeView     Type = "ViewAction"
	TypeConfirm  Type = "ConfirmAction"
	TypeSave     Type = "SaveAction"
	TypeRsvp     Type = "RsvpAction"
	TypeTrack    Type = "TrackAction"
	TypeUpdate   Type = "UpdateAction"
	TypeCancel   Type = "CancelAction"
	TypeDownload Type = "DownloadAction"

	TypeFlightReservation    Type = "FlightReservation"
	TypeLodgingReservation   Type = "LodgingReservation"
	TypeTrainReservation     Type = "TrainReservation"
	TypeBusReservation       Type = "BusReservation"
	TypeRentalCarReservation Type = "RentalCarReservation"
	TypeFoodReservation      Type = "FoodEstablishmentReservation"

	TypeOrder   Type = "OrderAction"
	TypeInvoice Type = "Invoice"
)

// Types lists all supported action variants in a stable order.
func Types() []Type {
	return []Type{
		TypeView, TypeConfirm, TypeSave, TypeRsvp, TypeTrack,
		TypeUpdate, TypeCancel, TypeDownload,
		TypeFlightReservation, TypeLodgingReservation, TypeTrainReservation,
		TypeBusReservation, TypeRentalCarReservation, TypeFoodReservation,
		TypeOrder, TypeInvoice,
	}
}

// IsValid reports whether t is a known action variant.
func (t Type) IsValid() bool {
	for _, known := range Types() {
		if t == known {
			return true
		}
	}
	return false
}

// Config is the typed configuration of one action block. Which payload
// field is meaningful depends on Type; unrelated payloads stay nil.
type Config struct {
	Type        Type   `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	// Simple actions.
	Target   *Target  `json:"target,omitempty"`
	Handler  *Handler `json:"handler,omitempty"`
	URL      string   `json:"url,omitempty"`
	Filename string   `json:"filename,omitempty"`

	// Event and parcel payloads.
	Event  *Event  `json:"event,omitempty"`
	Parcel *Parcel `json:"parcel,omitempty"`

	// Reservation payloads.
	Flight     *Flight     `json:"flight,omitempty"`
	Lodging    *Lodging    `json:"lodging,omitempty"`
	Train      *Train      `json:"train,omitempty"`
	Bus        *Bus        `json:"bus,omitempty"`
	RentalCar  *RentalCar  `json:"rentalCar,omitempty"`
	Restaurant *Restaurant `json:"restaurant,omitempty"`

	// Commerce payloads.
	Order   *Order   `json:"order,omitempty"`
	Invoice *Invoice `json:"invoice,omitempty"`
}

// Handler is the HTTP endpoint invoked by in-mail confirm/save/update/cancel
// buttons.
type Handler struct {
	URL    string `json:"url"`
	Method string `json:"method,omitempty"` // GET or POST
}

// Target holds the URL (or ordered URL list) a simple action points at. The
// wire form may be a bare string or an array of strings; the distinction is
// preserved so markup round-trips the original shape.
type Target struct {
	urls []string
	list bool
}

// NewTarget wraps a single URL.
func NewTarget(url string) *Target {
	return &Target{urls: []string{url}}
}

// NewTargetList wraps an ordered list of URLs.
func NewTargetList(urls ...string) *Target {
	return &Target{urls: urls, list: true}
}

// First returns the first URL and false when the list is empty.
func (t *Target) First() (string, bool) {
	if t == nil || len(t.urls) == 0 {
		return "", false
	}
	return t.urls[0], true
}

// URLs returns the contained URLs in order.
func (t *Target) URLs() []string {
	if t == nil {
		return nil
	}
	return append([]string(nil), t.urls...)
}

// IsList reports whether the wire form was an array.
func (t *Target) IsList() bool {
	return t != nil && t.list
}

// UnmarshalJSON accepts either "https://x" or ["https://x", ...].
func (t *Target) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		t.urls = []string{single}
		t.list = false
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	t.urls = many
	t.list = true
	return nil
}

// MarshalJSON emits the same shape the value was created with.
func (t Target) MarshalJSON() ([]byte, error) {
	if t.list {
		return json.Marshal(t.urls)
	}
	if len(t.urls) == 0 {
		return json.Marshal("")
	}
	return json.Marshal(t.urls[0])
}

// Address is a postal address; all fields are optional.
type Address struct {
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	Region     string `json:"region,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country,omitempty"`
}

// IsEmpty reports whether no address component is set.
func (a *Address) IsEmpty() bool {
	return a == nil || *a == Address{}
}

// Place is a named location with an optional address.
type Place struct {
	Name    string   `json:"name"`
	Address *Address `json:"address,omitempty"`
}

// Event is the RSVP payload.
type Event struct {
	Name      string `json:"name"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate,omitempty"`
	Location  *Place `json:"location,omitempty"`
	Organizer string `json:"organizer,omitempty"`
}

// Parcel is the rich tracking payload. When present it takes precedence
// over the simple track shape at generation time.
type Parcel struct {
	TrackingURL          string   `json:"trackingUrl,omitempty"`
	TrackingNumber       string   `json:"trackingNumber,omitempty"`
	Carrier              string   `json:"carrier,omitempty"`
	DeliveryAddress      *Address `json:"deliveryAddress,omitempty"`
	ItemShipped          string   `json:"itemShipped,omitempty"`
	OrderNumber          string   `json:"orderNumber,omitempty"`
	Merchant             string   `json:"merchant,omitempty"`
	ExpectedArrivalUntil string   `json:"expectedArrivalUntil,omitempty"`
}
