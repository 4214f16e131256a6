package catalog

import (
	"fmt"
	"time"
)

// offerings is the fixed workshop menu. Order matters for display.
var offerings = []ServiceOffering{
	{
		ID:          "basic-tune",
		Name:        "Basic Tune-Up",
		Description: "Brake adjustment, gear tuning, tire pressure check, and basic safety inspection.",
		Duration:    "1 hour",
		Price:       49,
	},
	{
		ID:          "full-service",
		Name:        "Full Service",
		Description: "Complete bike overhaul including drivetrain cleaning, wheel truing, and bearing adjustments.",
		Duration:    "3 hours",
		Price:       129,
	},
	{
		ID:          "wheel-build",
		Name:        "Custom Wheel Building",
		Description: "Professional wheel building service with your choice of hubs, rims, and spokes.",
		Duration:    "4 hours",
		Price:       199,
	},
	{
		ID:       "bike-fitting",
		Name:     "Professional Bike Fitting",
		Duration: "2 hours",
		Price:    149,
	},
	{
		ID:       "suspension",
		Name:     "Suspension Service",
		Duration: "2 hours",
		Price:    99,
	},
}

// Provider serves the fixed service menu and the derived date/time options.
// The clock is injected so date generation is testable at calendar edges.
type Provider struct {
	now func() time.Time
}

// NewProvider creates a Provider. A nil clock defaults to time.Now.
func NewProvider(now func() time.Time) *Provider {
	if now == nil {
		now = time.Now
	}
	return &Provider{now: now}
}

// Services returns the workshop menu in display order.
func (p *Provider) Services() []ServiceOffering {
	out := make([]ServiceOffering, len(offerings))
	copy(out, offerings)
	return out
}

// ServiceByID looks up an offering. The second return is false if the ID is unknown.
func (p *Provider) ServiceByID(id string) (ServiceOffering, bool) {
	for _, s := range offerings {
		if s.ID == id {
			return s, true
		}
	}
	return ServiceOffering{}, false
}

// AvailableDates returns the next 14 calendar days, strictly after today,
// with Sundays removed. Labels are short-weekday/short-month/day.
func (p *Provider) AvailableDates() []DateOption {
	today := p.now()
	dates := make([]DateOption, 0, 14)

	for i := 1; i <= 14; i++ {
		d := today.AddDate(0, 0, i)
		if d.Weekday() == time.Sunday {
			continue
		}
		dates = append(dates, DateOption{
			Date:  time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location()),
			Label: d.Format("Mon, Jan 2"),
		})
	}

	return dates
}

// DateByValue resolves a YYYY-MM-DD string against the current date window.
func (p *Provider) DateByValue(value string) (DateOption, bool) {
	for _, d := range p.AvailableDates() {
		if d.Date.Format("2006-01-02") == value {
			return d, true
		}
	}
	return DateOption{}, false
}

// TimeSlots returns half-hour appointment slots between 9:00 and 17:00.
// The shop closes over lunch, so hour 12 is skipped entirely, and the day
// ends at 17:00 so there is no 17:30 slot.
func (p *Provider) TimeSlots() []string {
	slots := make([]string, 0, 18)
	for hour := 9; hour <= 17; hour++ {
		if hour == 12 {
			continue
		}
		slots = append(slots, fmt.Sprintf("%d:00", hour))
		if hour != 17 {
			slots = append(slots, fmt.Sprintf("%d:30", hour))
		}
	}
	return slots
}

// HasTimeSlot reports whether the label is one of the generated slots.
func (p *Provider) HasTimeSlot(label string) bool {
	for _, s := range p.TimeSlots() {
		if s == label {
			return true
		}
	}
	return false
}
