package action

// ReservationStatus is the closed status enumeration shared by all
// reservation payloads. The literal token is concatenated into the markup
// status URI, so values must never be re-mapped.
type ReservationStatus string

const (
	ReservationConfirmed ReservationStatus = "Confirmed"
	ReservationPending   ReservationStatus = "Pending"
	ReservationCancelled ReservationStatus = "Cancelled"
	ReservationCheckedIn ReservationStatus = "CheckedIn"
)

// IsValid reports whether s is a known reservation status.
func (s ReservationStatus) IsValid() bool {
	switch s {
	case ReservationConfirmed, ReservationPending, ReservationCancelled, ReservationCheckedIn:
		return true
	}
	return false
}

// Airline identifies a carrier by display name and optional IATA code.
type Airline struct {
	Name     string `json:"name"`
	IATACode string `json:"iataCode,omitempty"`
}

// Airport identifies an airport, primarily by IATA code.
type Airport struct {
	Name     string `json:"name,omitempty"`
	IATACode string `json:"iataCode"`
}

// Flight is the FlightReservation payload.
type Flight struct {
	ReservationNumber string            `json:"reservationNumber"`
	ReservationStatus ReservationStatus `json:"reservationStatus"`
	UnderName         string            `json:"underName"`
	Airline           Airline           `json:"airline"`
	FlightNumber      string            `json:"flightNumber"`
	DepartureAirport  Airport           `json:"departureAirport"`
	DepartureTime     string            `json:"departureTime"`
	ArrivalAirport    Airport           `json:"arrivalAirport"`
	ArrivalTime       string            `json:"arrivalTime"`
}

// Lodging is the LodgingReservation payload.
type Lodging struct {
	ReservationNumber string            `json:"reservationNumber"`
	ReservationStatus ReservationStatus `json:"reservationStatus"`
	UnderName         string            `json:"underName"`
	LodgingName       string            `json:"lodgingName"`
	Address           *Address          `json:"address,omitempty"`
	Telephone         string            `json:"telephone,omitempty"`
	CheckinTime       string            `json:"checkinTime"`
	CheckoutTime      string            `json:"checkoutTime"`
}

// Train is the TrainReservation payload.
type Train struct {
	ReservationNumber string            `json:"reservationNumber"`
	ReservationStatus ReservationStatus `json:"reservationStatus"`
	UnderName         string            `json:"underName"`
	TrainNumber       string            `json:"trainNumber,omitempty"`
	DepartureStation  string            `json:"departureStation"`
	DepartureTime     string            `json:"departureTime"`
	ArrivalStation    string            `json:"arrivalStation"`
	ArrivalTime       string            `json:"arrivalTime"`
}

// Bus is the BusReservation payload.
type Bus struct {
	ReservationNumber string            `json:"reservationNumber"`
	ReservationStatus ReservationStatus `json:"reservationStatus"`
	UnderName         string            `json:"underName"`
	BusNumber         string            `json:"busNumber,omitempty"`
	DepartureBusStop  string            `json:"departureBusStop"`
	DepartureTime     string            `json:"departureTime"`
	ArrivalBusStop    string            `json:"arrivalBusStop"`
	ArrivalTime       string            `json:"arrivalTime"`
}

// RentalCar is the RentalCarReservation payload.
type RentalCar struct {
	ReservationNumber string            `json:"reservationNumber"`
	ReservationStatus ReservationStatus `json:"reservationStatus"`
	UnderName         string            `json:"underName"`
	CarName           string            `json:"carName"`
	CarModel          string            `json:"carModel,omitempty"`
	PickupLocation    *Place            `json:"pickupLocation,omitempty"`
	PickupTime        string            `json:"pickupTime"`
	DropoffLocation   *Place            `json:"dropoffLocation,omitempty"`
	DropoffTime       string            `json:"dropoffTime"`
}

// Restaurant is the FoodEstablishmentReservation payload.
type Restaurant struct {
	ReservationNumber string            `json:"reservationNumber"`
	ReservationStatus ReservationStatus `json:"reservationStatus"`
	UnderName         string            `json:"underName"`
	RestaurantName    string            `json:"restaurantName"`
	Address           *Address          `json:"address,omitempty"`
	StartTime         string            `json:"startTime"`
	PartySize         int               `json:"partySize"`
}
