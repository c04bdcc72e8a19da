package markup

import "github.com/dmitrymomot/mailblocks/pkg/action"

// reservationBase carries the fields every reservation variant shares. The
// status URI concatenates the fixed prefix with the literal enum token.
func reservationBase(typ string, number string, status action.ReservationStatus, underName string) Object {
	o := newObject(typ)
	o["reservationNumber"] = number
	o["reservationStatus"] = ReservationStatusPrefix + string(status)
	o["underName"] = person(underName)
	return o
}

func flightReservation(f *action.Flight) Object {
	airline := entity("Airline")
	airline["name"] = f.Airline.Name
	airline.setIfPresent("iataCode", f.Airline.IATACode)

	trip := entity("Flight")
	trip["flightNumber"] = f.FlightNumber
	trip["airline"] = airline
	trip["departureAirport"] = airport(f.DepartureAirport)
	trip["departureTime"] = f.DepartureTime
	trip["arrivalAirport"] = airport(f.ArrivalAirport)
	trip["arrivalTime"] = f.ArrivalTime

	o := reservationBase("FlightReservation", f.ReservationNumber, f.ReservationStatus, f.UnderName)
	o["reservationFor"] = trip
	return o
}

func airport(a action.Airport) Object {
	o := entity("Airport")
	o.setIfPresent("name", a.Name)
	o["iataCode"] = a.IATACode
	return o
}

func lodgingReservation(l *action.Lodging) Object {
	business := entity("LodgingBusiness")
	business["name"] = l.LodgingName
	if !l.Address.IsEmpty() {
		business["address"] = postalAddress(l.Address)
	}
	business.setIfPresent("telephone", l.Telephone)

	o := reservationBase("LodgingReservation", l.ReservationNumber, l.ReservationStatus, l.UnderName)
	o["reservationFor"] = business
	o["checkinTime"] = l.CheckinTime
	o["checkoutTime"] = l.CheckoutTime
	return o
}

func trainReservation(t *action.Train) Object {
	trip := entity("TrainTrip")
	trip.setIfPresent("trainNumber", t.TrainNumber)
	trip["departureStation"] = namedEntity("TrainStation", t.DepartureStation)
	trip["departureTime"] = t.DepartureTime
	trip["arrivalStation"] = namedEntity("TrainStation", t.ArrivalStation)
	trip["arrivalTime"] = t.ArrivalTime

	o := reservationBase("TrainReservation", t.ReservationNumber, t.ReservationStatus, t.UnderName)
	o["reservationFor"] = trip
	return o
}

func busReservation(b *action.Bus) Object {
	trip := entity("BusTrip")
	trip.setIfPresent("busNumber", b.BusNumber)
	trip["departureBusStop"] = namedEntity("BusStop", b.DepartureBusStop)
	trip["departureTime"] = b.DepartureTime
	trip["arrivalBusStop"] = namedEntity("BusStop", b.ArrivalBusStop)
	trip["arrivalTime"] = b.ArrivalTime

	o := reservationBase("BusReservation", b.ReservationNumber, b.ReservationStatus, b.UnderName)
	o["reservationFor"] = trip
	return o
}

func rentalCarReservation(rc *action.RentalCar) Object {
	car := entity("RentalCar")
	car["name"] = rc.CarName
	car.setIfPresent("model", rc.CarModel)

	o := reservationBase("RentalCarReservation", rc.ReservationNumber, rc.ReservationStatus, rc.UnderName)
	o["reservationFor"] = car
	if rc.PickupLocation != nil {
		o["pickupLocation"] = place(rc.PickupLocation)
	}
	o["pickupTime"] = rc.PickupTime
	if rc.DropoffLocation != nil {
		o["dropoffLocation"] = place(rc.DropoffLocation)
	}
	o["dropoffTime"] = rc.DropoffTime
	return o
}

func foodReservation(r *action.Restaurant) Object {
	venue := entity("FoodEstablishment")
	venue["name"] = r.RestaurantName
	if !r.Address.IsEmpty() {
		venue["address"] = postalAddress(r.Address)
	}

	o := reservationBase("FoodEstablishmentReservation", r.ReservationNumber, r.ReservationStatus, r.UnderName)
	o["reservationFor"] = venue
	o["startTime"] = r.StartTime
	if r.PartySize > 0 {
		o["partySize"] = r.PartySize
	}
	return o
}

func namedEntity(typ, name string) Object {
	o := entity(typ)
	o["name"] = name
	return o
}
