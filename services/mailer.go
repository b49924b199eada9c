package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/MAyankprine20001/Penta-Cabs/models"
	"github.com/MAyankprine20001/Penta-Cabs/sender"
)

var mailFuncs = template.FuncMap{
	"upper": strings.ToUpper,
	"orDash": func(s string) string {
		if s == "" {
			return "-"
		}
		return s
	},
}

var (
	routeLaunchTmpl = template.Must(template.New("routeLaunch").Funcs(mailFuncs).Parse(`
<h2>{{.Icon}} New {{.Kind}} Route: {{.Route}}</h2>
<p>Hello,</p>
<p>We&rsquo;re excited to announce a new {{.KindLower}} route: <strong>{{.Route}}</strong>.</p>
<ul>{{range .Cars}}<li><strong>{{upper .Type}}</strong>: &#8377;{{.Price}}</li>{{else}}<li>No cars currently available</li>{{end}}</ul>
<p>&#9989; Book now!</p>
<br/><p><strong>MakeRide Team</strong></p>`))

	airportBookingTmpl = template.Must(template.New("airportBooking").Funcs(mailFuncs).Parse(`
<h2>&#128747; Airport {{if eq .ServiceType "drop"}}Drop{{else}}Pickup{{end}} Booking Confirmed</h2>
<p><strong>Route:</strong> {{.Route}}</p>
<p><strong>From/To:</strong> {{.OtherLocation}}</p>
<p><strong>Date &amp; Time:</strong> {{.Date}} at {{.Time}}</p>
<p><strong>Cab:</strong> {{upper .Cab.Type}} &ndash; &#8377;{{.Cab.Price}}</p>
<hr/>
<h3>&#129485; Traveller Details</h3>
<p><strong>Name:</strong> {{.Traveller.Name}}</p>
<p><strong>Mobile:</strong> {{.Traveller.Mobile}}</p>
<p><strong>Pickup Address:</strong> {{orDash .Traveller.Pickup}}</p>
<p><strong>Drop Address:</strong> {{orDash .Traveller.Drop}}</p>
<p><strong>Remark:</strong> {{orDash .Traveller.Remark}}</p>
<p><strong>GST:</strong> {{orDash .Traveller.GST}}</p>
<br/><p><strong>MakeRide Team</strong></p>`))

	localBookingTmpl = template.Must(template.New("localBooking").Funcs(mailFuncs).Parse(`
<h2>&#128662; Local Ride Booking</h2>
<p><strong>Route:</strong> {{.Route}}</p>
<p><strong>Car Selected:</strong> {{upper .Cab.Type}} - &#8377;{{.Cab.Price}}</p>
<hr />
<h3>&#128100; Traveller Details</h3>
<p><strong>Name:</strong> {{.Traveller.Name}}</p>
<p><strong>Mobile:</strong> {{.Traveller.Mobile}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Pickup:</strong> {{.Traveller.Pickup}}</p>
<p><strong>Drop:</strong> {{.Traveller.Drop}}</p>
<p><strong>Remark:</strong> {{.Traveller.Remark}}</p>
{{if .Traveller.GST}}<p><strong>GST:</strong> {{.Traveller.GST}}</p>{{end}}
<br/><p>Thanks,<br/><strong>MakeRide Team</strong></p>`))

	intercityBookingTmpl = template.Must(template.New("intercityBooking").Funcs(mailFuncs).Parse(`
<h2>&#128662; Intercity Booking Confirmation</h2>
<p><strong>Route:</strong> {{.Route}}</p>
<p><strong>Cab:</strong> {{upper .Cab.Type}} - &#8377;{{.Cab.Price}}</p>
<p><strong>Date:</strong> {{.Date}}</p>
<hr/>
<h3>&#129485; Traveller Details</h3>
<p><strong>Name:</strong> {{.Traveller.Name}}</p>
<p><strong>Mobile:</strong> {{.Traveller.Mobile}}</p>
<p><strong>Pickup:</strong> {{.Traveller.Pickup}}</p>
<p><strong>Drop:</strong> {{.Traveller.Drop}}</p>
<p><strong>Remark:</strong> {{orDash .Traveller.Remark}}</p>
<p><strong>GST:</strong> {{orDash .Traveller.GST}}</p>
<br/><p><strong>MakeRide Team</strong></p>`))

	driverDetailsTmpl = template.Must(template.New("driverDetails").Funcs(mailFuncs).Parse(`
<h2>&#128662; Your Driver Details</h2>
<p><strong>Route:</strong> {{.Route}}</p>
<p><strong>Date:</strong> {{.Date}}</p>
<p><strong>Time:</strong> {{.Time}}</p>
<hr/>
<h3>&#128104;&#8205;&#128188; Driver Information</h3>
<p><strong>Name:</strong> {{.Driver.Name}}</p>
<p><strong>WhatsApp:</strong> {{.Driver.WhatsappNumber}}</p>
<p><strong>Vehicle Number:</strong> {{.Driver.VehicleNumber}}</p>
<br/><p><strong>MakeRide Team</strong></p>`))

	declineTmpl = template.Must(template.New("decline").Funcs(mailFuncs).Parse(`
<h2>&#128221; Booking Update</h2>
<p>We regret to inform you that we are unable to fulfill your booking request at this time.</p>
<p><strong>Route:</strong> {{.Route}}</p>
<p><strong>Reason:</strong> {{.Reason}}</p>
<hr/><p>Sorry for the inconvenience.</p><br/><p><strong>MakeRide Team</strong></p>`))
)

// Mailer renders and sends the transactional mails for bookings and route
// announcements.
type Mailer struct {
	sender sender.EmailSender
}

func NewMailer(s sender.EmailSender) *Mailer {
	return &Mailer{sender: s}
}

func (m *Mailer) render(t *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render mail template %q: %w", t.Name(), err)
	}
	return buf.String(), nil
}

func (m *Mailer) send(ctx context.Context, to, subject string, t *template.Template, data interface{}) error {
	body, err := m.render(t, data)
	if err != nil {
		return err
	}
	_, err = m.sender.SendEmail(ctx, to, subject, body)
	return err
}

// SendRouteLaunch announces a newly added route (outstation or airport) with
// its available cars.
func (m *Mailer) SendRouteLaunch(ctx context.Context, to, kind, route string, cars []models.Car) error {
	subject := "\U0001F697 New Outstation Route Launched!"
	icon := "\U0001F697"
	if kind == "Airport" {
		subject = "\U0001F6EB New Airport Route Now Available!"
		icon = "\U0001F6EB"
	}
	data := map[string]interface{}{
		"Icon":      icon,
		"Kind":      kind,
		"KindLower": strings.ToLower(kind),
		"Route":     route,
		"Cars":      models.AvailableCars(cars),
	}
	return m.send(ctx, to, subject, routeLaunchTmpl, data)
}

// SendAirportBooking confirms an airport pickup/drop booking.
func (m *Mailer) SendAirportBooking(ctx context.Context, to, route, otherLocation, date, timeStr, serviceType string, cab models.Car, traveller models.Traveller) error {
	data := map[string]interface{}{
		"Route":         route,
		"OtherLocation": otherLocation,
		"Date":          date,
		"Time":          timeStr,
		"ServiceType":   serviceType,
		"Cab":           cab,
		"Traveller":     traveller,
	}
	return m.send(ctx, to, "Your Airport Ride Booking", airportBookingTmpl, data)
}

// SendLocalBooking confirms a local (in-city) ride booking.
func (m *Mailer) SendLocalBooking(ctx context.Context, to, route string, cab models.Car, traveller models.Traveller) error {
	data := map[string]interface{}{
		"Route":     route,
		"Cab":       cab,
		"Traveller": traveller,
		"Email":     to,
	}
	return m.send(ctx, to, "\U0001F9FE Your Local Ride Booking Confirmation", localBookingTmpl, data)
}

// SendIntercityBooking confirms an outstation booking.
func (m *Mailer) SendIntercityBooking(ctx context.Context, to, route string, cab models.Car, traveller models.Traveller) error {
	data := map[string]interface{}{
		"Route":     route,
		"Cab":       cab,
		"Traveller": traveller,
		"Date":      time.Now().Format("02/01/2006"),
	}
	return m.send(ctx, to, "\U0001F696 Your Intercity Ride is Confirmed!", intercityBookingTmpl, data)
}

// SendDriverDetails mails the assigned driver's details to the traveller.
func (m *Mailer) SendDriverDetails(ctx context.Context, to string, booking *models.BookingRequest, driver models.DriverDetails) error {
	data := map[string]interface{}{
		"Route":  booking.Route,
		"Date":   booking.Date,
		"Time":   booking.Time,
		"Driver": driver,
	}
	return m.send(ctx, to, "\U0001F696 Your Driver Details - MakeRide", driverDetailsTmpl, data)
}

// SendDecline notifies the traveller that the booking cannot be fulfilled.
func (m *Mailer) SendDecline(ctx context.Context, to, route, reason string) error {
	if reason == "" {
		reason = "Service temporarily unavailable"
	}
	data := map[string]interface{}{"Route": route, "Reason": reason}
	return m.send(ctx, to, "\U0001F4DD Booking Update - MakeRide", declineTmpl, data)
}
