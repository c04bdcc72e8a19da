package action

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// Result is the validation verdict for one action configuration. Valid is
// true iff Errors is empty; Warnings are advisory and never affect Valid.
type Result struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// rule pairs a predicate with the error emitted when it fails. Rules are
// evaluated in order so error lists stay deterministic.
type rule struct {
	ok  func() bool
	msg string
}

func apply(dst []string, rules ...rule) []string {
	for _, r := range rules {
		if !r.ok() {
			dst = append(dst, r.msg)
		}
	}
	return dst
}

// Timestamps must be YYYY-MM-DDTHH:MM:SS followed by Z or a signed HH:MM
// offset. Fractional seconds and bare dates are rejected on purpose.
var isoTimestampRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(Z|[+-]\d{2}:\d{2})$`)

func isISOTimestamp(s string) bool {
	if !isoTimestampRe.MatchString(s) {
		return false
	}
	_, err := time.Parse(time.RFC3339, s)
	return err == nil
}

func isAbsoluteURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.IsAbs() && u.Host != ""
}

const maxNameLength = 20

// Validate checks one action configuration and returns its verdict. It is
// pure: the input is never mutated and repeated calls yield equal results.
func Validate(cfg Config) Result {
	var errs, warns []string

	if cfg.Type == "" {
		errs = append(errs, "Action type is required")
	} else if !cfg.Type.IsValid() {
		errs = append(errs, fmt.Sprintf("unsupported action type: %s", cfg.Type))
	}

	if strings.TrimSpace(cfg.Name) == "" {
		errs = append(errs, "Action name is required")
	} else {
		if strings.ContainsAny(cfg.Name, "!.") {
			warns = append(warns, "Action name should not contain '!' or '.'")
		}
		if cfg.Name == strings.ToUpper(cfg.Name) {
			warns = append(warns, "Action name should not be all caps")
		}
		if utf8.RuneCountInString(cfg.Name) > maxNameLength {
			warns = append(warns, fmt.Sprintf("Action name should be %d characters or fewer", maxNameLength))
		}
	}

	switch cfg.Type {
	case TypeView:
		errs = validateView(cfg, errs)
	case TypeConfirm, TypeSave, TypeUpdate, TypeCancel:
		errs = validateHandler(cfg, errs)
	case TypeRsvp:
		errs = validateRsvp(cfg, errs)
	case TypeTrack:
		errs = validateTrack(cfg, errs)
	case TypeDownload:
		errs = validateDownload(cfg, errs)
	case TypeFlightReservation:
		errs = validateFlight(cfg.Flight, errs)
	case TypeLodgingReservation:
		errs = validateLodging(cfg.Lodging, errs)
	case TypeTrainReservation:
		errs = validateTrain(cfg.Train, errs)
	case TypeBusReservation:
		errs = validateBus(cfg.Bus, errs)
	case TypeRentalCarReservation:
		errs = validateRentalCar(cfg.RentalCar, errs)
	case TypeFoodReservation:
		errs = validateRestaurant(cfg.Restaurant, errs)
	case TypeOrder:
		errs = validateOrder(cfg.Order, errs)
	case TypeInvoice:
		errs = validateInvoice(cfg.Invoice, errs)
	}

	return Result{
		Valid:    len(errs) == 0,
		Errors:   errs,
		Warnings: warns,
	}
}

func validateView(cfg Config, errs []string) []string {
	if cfg.Target == nil {
		return append(errs, "target is required for ViewAction")
	}
	first, ok := cfg.Target.First()
	if !ok {
		return append(errs, "target array must contain at least one URL")
	}
	// Only the first URL is validated; the rest are carried through as-is.
	if !isAbsoluteURL(first) {
		errs = append(errs, "target must be an absolute URL")
	}
	return errs
}

func validateHandler(cfg Config, errs []string) []string {
	if cfg.Handler == nil || cfg.Handler.URL == "" {
		return append(errs, "handler.url is required")
	}
	// Literal prefix test and URL parse are independent checks: both fire
	// for e.g. "http://bad host".
	return apply(errs,
		rule{func() bool { return strings.HasPrefix(cfg.Handler.URL, "https://") }, "handler.url must use HTTPS"},
		rule{func() bool { return isAbsoluteURL(cfg.Handler.URL) }, "handler.url must be an absolute URL"},
	)
}

func validateRsvp(cfg Config, errs []string) []string {
	if cfg.Event == nil {
		return append(errs, "event is required for RsvpAction")
	}
	ev := cfg.Event
	return apply(errs,
		rule{func() bool { return strings.TrimSpace(ev.Name) != "" }, "event.name is required"},
		rule{func() bool { return isISOTimestamp(ev.StartDate) }, "event.startDate must be an ISO-8601 timestamp with timezone"},
		rule{func() bool { return ev.Location != nil && strings.TrimSpace(ev.Location.Name) != "" }, "event.location.name is required"},
	)
}

func validateTrack(cfg Config, errs []string) []string {
	hasTarget := false
	if cfg.Target != nil {
		_, hasTarget = cfg.Target.First()
	}
	hasParcelURL := cfg.Parcel != nil && cfg.Parcel.TrackingURL != ""

	if !hasTarget && !hasParcelURL {
		return append(errs, "either target or parcel.trackingUrl is required")
	}
	if hasParcelURL && !isAbsoluteURL(cfg.Parcel.TrackingURL) {
		errs = append(errs, "parcel.trackingUrl must be an absolute URL")
	}
	return errs
}

func validateDownload(cfg Config, errs []string) []string {
	if cfg.URL == "" {
		return append(errs, "url is required for DownloadAction")
	}
	if !isAbsoluteURL(cfg.URL) {
		errs = append(errs, "url must be an absolute URL")
	}
	return errs
}

func validateReservationCore(prefix, number string, status ReservationStatus, underName string, errs []string) []string {
	return apply(errs,
		rule{func() bool { return number != "" }, prefix + ".reservationNumber is required"},
		rule{func() bool { return status.IsValid() }, prefix + ".reservationStatus must be one of Confirmed, Pending, Cancelled, CheckedIn"},
		rule{func() bool { return strings.TrimSpace(underName) != "" }, prefix + ".underName is required"},
	)
}

func validateFlight(f *Flight, errs []string) []string {
	if f == nil {
		return append(errs, "flight payload is required for FlightReservation")
	}
	errs = validateReservationCore("flight", f.ReservationNumber, f.ReservationStatus, f.UnderName, errs)
	return apply(errs,
		rule{func() bool { return f.FlightNumber != "" }, "flight.flightNumber is required"},
		rule{func() bool { return f.Airline.Name != "" }, "flight.airline.name is required"},
		rule{func() bool { return f.DepartureAirport.IATACode != "" }, "flight.departureAirport.iataCode is required"},
		rule{func() bool { return isISOTimestamp(f.DepartureTime) }, "flight.departureTime must be an ISO-8601 timestamp with timezone"},
		rule{func() bool { return f.ArrivalAirport.IATACode != "" }, "flight.arrivalAirport.iataCode is required"},
		rule{func() bool { return isISOTimestamp(f.ArrivalTime) }, "flight.arrivalTime must be an ISO-8601 timestamp with timezone"},
	)
}

func validateLodging(l *Lodging, errs []string) []string {
	if l == nil {
		return append(errs, "lodging payload is required for LodgingReservation")
	}
	errs = validateReservationCore("lodging", l.ReservationNumber, l.ReservationStatus, l.UnderName, errs)
	return apply(errs,
		rule{func() bool { return strings.TrimSpace(l.LodgingName) != "" }, "lodging.lodgingName is required"},
		rule{func() bool { return isISOTimestamp(l.CheckinTime) }, "lodging.checkinTime must be an ISO-8601 timestamp with timezone"},
		rule{func() bool { return isISOTimestamp(l.CheckoutTime) }, "lodging.checkoutTime must be an ISO-8601 timestamp with timezone"},
	)
}

func validateTrain(tr *Train, errs []string) []string {
	if tr == nil {
		return append(errs, "train payload is required for TrainReservation")
	}
	errs = validateReservationCore("train", tr.ReservationNumber, tr.ReservationStatus, tr.UnderName, errs)
	return apply(errs,
		rule{func() bool { return tr.DepartureStation != "" }, "train.departureStation is required"},
		rule{func() bool { return isISOTimestamp(tr.DepartureTime) }, "train.departureTime must be an ISO-8601 timestamp with timezone"},
		rule{func() bool { return tr.ArrivalStation != "" }, "train.arrivalStation is required"},
		rule{func() bool { return isISOTimestamp(tr.ArrivalTime) }, "train.arrivalTime must be an ISO-8601 timestamp with timezone"},
	)
}

func validateBus(b *Bus, errs []string) []string {
	if b == nil {
		return append(errs, "bus payload is required for BusReservation")
	}
	errs = validateReservationCore("bus", b.ReservationNumber, b.ReservationStatus, b.UnderName, errs)
	return apply(errs,
		rule{func() bool { return b.DepartureBusStop != "" }, "bus.departureBusStop is required"},
		rule{func() bool { return isISOTimestamp(b.DepartureTime) }, "bus.departureTime must be an ISO-8601 timestamp with timezone"},
		rule{func() bool { return b.ArrivalBusStop != "" }, "bus.arrivalBusStop is required"},
		rule{func() bool { return isISOTimestamp(b.ArrivalTime) }, "bus.arrivalTime must be an ISO-8601 timestamp with timezone"},
	)
}

func validateRentalCar(rc *RentalCar, errs []string) []string {
	if rc == nil {
		return append(errs, "rentalCar payload is required for RentalCarReservation")
	}
	errs = validateReservationCore("rentalCar", rc.ReservationNumber, rc.ReservationStatus, rc.UnderName, errs)
	return apply(errs,
		rule{func() bool { return strings.TrimSpace(rc.CarName) != "" }, "rentalCar.carName is required"},
		rule{func() bool { return rc.PickupLocation != nil && rc.PickupLocation.Name != "" }, "rentalCar.pickupLocation.name is required"},
		rule{func() bool { return isISOTimestamp(rc.PickupTime) }, "rentalCar.pickupTime must be an ISO-8601 timestamp with timezone"},
		rule{func() bool { return rc.DropoffLocation != nil && rc.DropoffLocation.Name != "" }, "rentalCar.dropoffLocation.name is required"},
		rule{func() bool { return isISOTimestamp(rc.DropoffTime) }, "rentalCar.dropoffTime must be an ISO-8601 timestamp with timezone"},
	)
}

func validateRestaurant(r *Restaurant, errs []string) []string {
	if r == nil {
		return append(errs, "restaurant payload is required for FoodEstablishmentReservation")
	}
	errs = validateReservationCore("restaurant", r.ReservationNumber, r.ReservationStatus, r.UnderName, errs)
	return apply(errs,
		rule{func() bool { return strings.TrimSpace(r.RestaurantName) != "" }, "restaurant.restaurantName is required"},
		rule{func() bool { return isISOTimestamp(r.StartTime) }, "restaurant.startTime must be an ISO-8601 timestamp with timezone"},
		rule{func() bool { return r.PartySize >= 1 }, "restaurant.partySize must be at least 1"},
	)
}

func validateOrder(o *Order, errs []string) []string {
	if o == nil {
		return append(errs, "order payload is required for OrderAction")
	}
	errs = apply(errs,
		rule{func() bool { return o.OrderNumber != "" }, "order.orderNumber is required"},
		rule{func() bool { return o.OrderDate != "" }, "order.orderDate is required"},
		rule{func() bool { return o.OrderStatus.IsValid() }, "order.orderStatus is not a recognized status"},
		rule{func() bool { return strings.TrimSpace(o.MerchantName) != "" }, "order.merchantName is required"},
		rule{func() bool { return strings.TrimSpace(o.CustomerName) != "" }, "order.customerName is required"},
		rule{func() bool { return len(o.Items) > 0 }, "order.items must contain at least one item"},
		rule{func() bool { return o.Currency != "" }, "order.currency is required"},
	)
	for i, item := range o.Items {
		if item.Name == "" {
			errs = append(errs, fmt.Sprintf("order.items[%d].name is required", i))
		}
		if item.Quantity < 1 {
			errs = append(errs, fmt.Sprintf("order.items[%d].quantity must be at least 1", i))
		}
	}
	return errs
}

func validateInvoice(inv *Invoice, errs []string) []string {
	if inv == nil {
		return append(errs, "invoice payload is required for Invoice")
	}
	errs = apply(errs,
		rule{func() bool { return inv.InvoiceNumber != "" }, "invoice.invoiceNumber is required"},
		rule{func() bool { return inv.InvoiceDate != "" }, "invoice.invoiceDate is required"},
		rule{func() bool { return inv.DueDate != "" }, "invoice.dueDate is required"},
		rule{func() bool { return inv.PaymentStatus.IsValid() }, "invoice.paymentStatus is not a recognized status"},
		rule{func() bool { return strings.TrimSpace(inv.ProviderName) != "" }, "invoice.providerName is required"},
		rule{func() bool { return strings.TrimSpace(inv.CustomerName) != "" }, "invoice.customerName is required"},
		rule{func() bool { return inv.AccountID != "" }, "invoice.accountId is required"},
		rule{func() bool { return len(inv.Items) > 0 }, "invoice.items must contain at least one item"},
		rule{func() bool { return inv.Currency != "" }, "invoice.currency is required"},
	)
	for i, item := range inv.Items {
		if item.Description == "" {
			errs = append(errs, fmt.Sprintf("invoice.items[%d].description is required", i))
		}
		if item.Quantity < 1 {
			errs = append(errs, fmt.Sprintf("invoice.items[%d].quantity must be at least 1", i))
		}
	}
	return errs
}
