package itinerary

// Builtin content dataset. Cities outside this set are served by the Places
// lookup or the generative fallback.

var builtinPOIs = map[string][]POI{
	"Chicago": {
		{Name: "Millennium Park", Type: "park", Location: "Chicago", VisitDuration: 60},
		{Name: "Cloud Gate (The Bean)", Type: "sculpture", Location: "Chicago", VisitDuration: 30},
		{Name: "Art Institute of Chicago", Type: "museum", Location: "Chicago", VisitDuration: 120},
		{Name: "Navy Pier", Type: "entertainment", Location: "Chicago", VisitDuration: 90},
		{Name: "Willis Tower Skydeck", Type: "observation deck", Location: "Chicago", VisitDuration: 60},
		{Name: "Chicago Riverwalk", Type: "scenic walk", Location: "Chicago", VisitDuration: 75},
		{Name: "Museum of Science and Industry", Type: "museum", Location: "Chicago", VisitDuration: 120},
		{Name: "Field Museum", Type: "museum", Location: "Chicago", VisitDuration: 120},
		{Name: "Lincoln Park Zoo", Type: "zoo", Location: "Chicago", VisitDuration: 90},
		{Name: "Chicago Architecture Boat Tour", Type: "tour", Location: "Chicago River", VisitDuration: 75},
		{Name: "West Loop Art District", Type: "neighborhood", Location: "Chicago", VisitDuration: 90},
		{Name: "Hyde Park & University of Chicago", Type: "neighborhood", Location: "Chicago", VisitDuration: 120},
	},
	"Sarasota": {
		{Name: "Ringling Museum", Type: "museum", Location: "Sarasota", VisitDuration: 90},
		{Name: "Siesta Key Beach", Type: "beach", Location: "Sarasota", VisitDuration: 120},
		{Name: "Marie Selby Botanical Gardens", Type: "garden", Location: "Sarasota", VisitDuration: 75},
		{Name: "Downtown Sarasota Farmers Market", Type: "market", Location: "Sarasota", VisitDuration: 60},
		{Name: "St. Armands Circle", Type: "shopping", Location: "Sarasota", VisitDuration: 90},
	},
	"New York": {
		{Name: "Times Square", Type: "entertainment", Location: "New York", VisitDuration: 60},
		{Name: "Central Park", Type: "park", Location: "New York", VisitDuration: 120},
		{Name: "Metropolitan Museum of Art", Type: "museum", Location: "New York", VisitDuration: 150},
		{Name: "Statue of Liberty & Ellis Island", Type: "historic", Location: "New York Harbor", VisitDuration: 180},
		{Name: "Brooklyn Bridge Walk", Type: "scenic walk", Location: "New York", VisitDuration: 90},
		{Name: "High Line Park", Type: "park", Location: "New York", VisitDuration: 75},
		{Name: "Museum of Modern Art", Type: "museum", Location: "New York", VisitDuration: 120},
		{Name: "Broadway Show", Type: "theater", Location: "New York", VisitDuration: 150},
		{Name: "Chelsea Market Food Tour", Type: "food", Location: "New York", VisitDuration: 90},
		{Name: "One World Observatory", Type: "observation deck", Location: "New York", VisitDuration: 90},
	},
	"Paris": {
		{Name: "Eiffel Tower", Type: "landmark", Location: "Paris", VisitDuration: 90},
		{Name: "Louvre Museum", Type: "museum", Location: "Paris", VisitDuration: 150},
		{Name: "Musée d'Orsay", Type: "museum", Location: "Paris", VisitDuration: 120},
		{Name: "Montmartre & Sacré-Cœur", Type: "neighborhood", Location: "Paris", VisitDuration: 120},
		{Name: "Seine River Cruise", Type: "tour", Location: "Paris", VisitDuration: 75},
		{Name: "Palace of Versailles", Type: "historic", Location: "Versailles", VisitDuration: 180},
		{Name: "Le Marais Food Walk", Type: "food", Location: "Paris", VisitDuration: 90},
		{Name: "Luxembourg Gardens", Type: "park", Location: "Paris", VisitDuration: 75},
		{Name: "Latin Quarter Walk", Type: "neighborhood", Location: "Paris", VisitDuration: 90},
		{Name: "Catacombs of Paris", Type: "historic", Location: "Paris", VisitDuration: 90},
	},
}

var builtinRestaurants = map[string][]Restaurant{
	"Chicago": {
		{Name: "Lou Mitchell's", Type: "breakfast", Location: "Chicago", PriceRange: "moderate"},
		{Name: "Beatnik on the River", Type: "breakfast", Location: "Chicago", PriceRange: "luxury"},
		{Name: "Wildberry Pancakes & Cafe", Type: "breakfast", Location: "Chicago", PriceRange: "moderate"},
		{Name: "Portillo's", Type: "dinner", Location: "Chicago", PriceRange: "budget"},
		{Name: "Girl & The Goat", Type: "dinner", Location: "Chicago", PriceRange: "luxury"},
		{Name: "Au Cheval", Type: "lunch", Location: "Chicago", PriceRange: "moderate"},
		{Name: "Xoco", Type: "lunch", Location: "Chicago", PriceRange: "budget"},
		{Name: "RPM Italian", Type: "dinner", Location: "Chicago", PriceRange: "luxury"},
		{Name: "The Purple Pig", Type: "lunch", Location: "Chicago", PriceRange: "moderate"},
		{Name: "Parson's Chicken & Fish", Type: "dinner", Location: "Chicago", PriceRange: "budget"},
		{Name: "Virtue Restaurant", Type: "dinner", Location: "Chicago", PriceRange: "moderate"},
		{Name: "Sweet Greens Lincoln Park", Type: "lunch", Location: "Chicago", PriceRange: "budget"},
	},
	"Sarasota": {
		{Name: "The Breakfast House", Type: "breakfast", Location: "Sarasota", PriceRange: "moderate"},
		{Name: "Station 400", Type: "breakfast", Location: "Sarasota", PriceRange: "moderate"},
		{Name: "Shore Diner", Type: "lunch", Location: "Sarasota", PriceRange: "moderate"},
		{Name: "Owen's Fish Camp", Type: "dinner", Location: "Sarasota", PriceRange: "moderate"},
		{Name: "Indigenous", Type: "dinner", Location: "Sarasota", PriceRange: "luxury"},
		{Name: "Yoder's Restaurant", Type: "lunch", Location: "Sarasota", PriceRange: "budget"},
	},
	"New York": {
		{Name: "Clinton St. Baking Company", Type: "breakfast", Location: "New York", PriceRange: "moderate"},
		{Name: "Ess-a-Bagel", Type: "breakfast", Location: "New York", PriceRange: "budget"},
		{Name: "Balthazar", Type: "breakfast", Location: "New York", PriceRange: "luxury"},
		{Name: "Shake Shack", Type: "lunch", Location: "New York", PriceRange: "budget"},
		{Name: "Joe's Pizza", Type: "lunch", Location: "New York", PriceRange: "budget"},
		{Name: "Los Tacos No. 1", Type: "lunch", Location: "New York", PriceRange: "moderate"},
		{Name: "Katz's Delicatessen", Type: "lunch", Location: "New York", PriceRange: "budget"},
		{Name: "Le Bernardin", Type: "dinner", Location: "New York", PriceRange: "luxury"},
		{Name: "Carbone", Type: "dinner", Location: "New York", PriceRange: "luxury"},
		{Name: "Momofuku Noodle Bar", Type: "dinner", Location: "New York", PriceRange: "moderate"},
	},
	"Paris": {
		{Name: "Café de Flore", Type: "breakfast", Location: "Paris", PriceRange: "luxury"},
		{Name: "Le Pain Quotidien", Type: "breakfast", Location: "Paris", PriceRange: "moderate"},
		{Name: "Du Pain et des Idées", Type: "breakfast", Location: "Paris", PriceRange: "moderate"},
		{Name: "Le Relais de l'Entrecôte", Type: "lunch", Location: "Paris", PriceRange: "moderate"},
		{Name: "L'As du Fallafel", Type: "lunch", Location: "Paris", PriceRange: "budget"},
		{Name: "Frenchie to Go", Type: "lunch", Location: "Paris", PriceRange: "moderate"},
		{Name: "Le Comptoir de la Gastronomie", Type: "dinner", Location: "Paris", PriceRange: "moderate"},
		{Name: "Septime", Type: "dinner", Location: "Paris", PriceRange: "luxury"},
		{Name: "Chez Janou", Type: "dinner", Location: "Paris", PriceRange: "moderate"},
		{Name: "Bistrot Paul Bert", Type: "dinner", Location: "Paris", PriceRange: "moderate"},
	},
}

// builtinHotels maps city -> style -> hotel name.
var builtinHotels = map[string]map[string]string{
	"chicago": {
		"budget":   "Budget Inn Chicago",
		"moderate": "Hyatt Centric Chicago Magnificent Mile",
		"luxury":   "The Langham Chicago",
	},
	"new york": {
		"budget":   "Pod 51 Hotel",
		"moderate": "Arlo Midtown",
		"luxury":   "The Plaza",
	},
	"paris": {
		"budget":   "Hôtel Jeanne d'Arc",
		"moderate": "Hôtel Fabric",
		"luxury":   "Le Meurice",
	},
}

// airportCodes maps city substrings to IATA codes for the return leg label.
var airportCodes = map[string]string{
	"sarasota":    "SRQ",
	"chicago":     "ORD",
	"new york":    "JFK",
	"los angeles": "LAX",
	"miami":       "MIA",
}
