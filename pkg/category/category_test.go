package category

import "testing"

func TestFromName(t *testing.T) {
	tests := []struct {
		name      string
		eventName string
		want      Category
	}{
		{name: "workshop keyword", eventName: "Resume Workshop", want: Workshops},
		{name: "counseling keyword", eventName: "Grief Counseling", want: Counseling},
		{name: "session keyword", eventName: "One-on-one Session", want: Counseling},
		{name: "community keyword", eventName: "Community Park", want: Community},
		{name: "park keyword", eventName: "Park Picnic", want: Community},
		{name: "volunteer keyword", eventName: "Volunteer Day", want: Volunteering},
		{name: "case insensitive", eventName: "COMMUNITY BBQ", want: Community},
		{name: "no keyword falls through", eventName: "Annual Gala", want: Default},
		{name: "empty name", eventName: "", want: Default},
		// Rules are checked in declaration order, first match wins.
		{name: "workshop beats volunteer", eventName: "Volunteer Workshop", want: Workshops},
		{name: "counseling beats park", eventName: "Park Counseling", want: Counseling},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromName(tt.eventName); got != tt.want {
				t.Errorf("FromName(%q) = %s, want %s", tt.eventName, got, tt.want)
			}
		})
	}
}

func TestEventDotColor(t *testing.T) {
	if got := EventDotColor("Community Park"); got != "bg-green-500" {
		t.Errorf("EventDotColor(Community Park) = %s, want bg-green-500", got)
	}
	if got := EventDotColor("Annual Gala"); got != "bg-gray-500" {
		t.Errorf("EventDotColor(Annual Gala) = %s, want bg-gray-500", got)
	}
}

func TestEventColorClasses(t *testing.T) {
	want := "bg-orange-100 text-orange-700 border-orange-200"
	if got := EventColorClasses("Job Skills Workshop"); got != want {
		t.Errorf("EventColorClasses = %q, want %q", got, want)
	}
}
