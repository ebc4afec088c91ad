package client

// Fixed demo dataset served when the backend is unreachable. Shapes
// match the live API exactly so callers cannot tell the source apart.
// This is deliberately not a cache: no TTL, no invalidation, always the
// same static entries.

func fallbackDistricts() []District {
	return []District{
		{ID: 1, Name: "Colombo", Description: "The commercial capital of Sri Lanka", Province: "Western", ImageURL: "/uploads/districts/colombo.jpg"},
		{ID: 2, Name: "Kandy", Description: "Home to the Temple of the Sacred Tooth Relic", Province: "Central", ImageURL: "/uploads/districts/kandy.jpg"},
		{ID: 3, Name: "Galle", Description: "Famous for its Dutch colonial architecture", Province: "Southern", ImageURL: "/uploads/districts/galle.jpg"},
		{ID: 4, Name: "Jaffna", Description: "Rich cultural heritage in the northern part", Province: "Northern", ImageURL: "/uploads/districts/jaffna.jpg"},
		{ID: 5, Name: "Trincomalee", Description: "Known for beautiful beaches and natural harbor", Province: "Eastern", ImageURL: "/uploads/districts/trincomalee.jpg"},
	}
}

func fallbackDestinations() []Destination {
	return []Destination{
		{ID: 101, Title: "Sigiriya Rock Fortress", DistrictID: 2, Description: "Ancient rock fortress with frescoes and gardens", Images: []string{"/uploads/images-1750785265516.jpg"}},
		{ID: 102, Title: "Galle Fort", DistrictID: 3, Description: "Historic fortified city built by the Portuguese", Images: []string{"/uploads/images-1750785364426.jpg"}},
		{ID: 103, Title: "Dambulla Cave Temple", DistrictID: 2, Description: "A sacred pilgrimage site for 22 centuries", Images: []string{"/uploads/images-1750785584274.png"}},
		{ID: 104, Title: "Colombo National Museum", DistrictID: 1, Description: "The largest museum in Sri Lanka", Images: []string{"/uploads/images-1755800929685.jpg"}},
		{ID: 105, Title: "Pigeon Island", DistrictID: 5, Description: "Marine national park with amazing snorkeling", Images: []string{"/uploads/images-1755800929690.jpg"}},
		{ID: 106, Title: "Jaffna Fort", DistrictID: 4, Description: "Portuguese fort later occupied by the Dutch", Images: []string{"/uploads/images-1750785265516.jpg"}},
	}
}
