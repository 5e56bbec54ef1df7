package domain

// DefaultMajorRoads returns the Jakarta road segments swept when no roads
// file is configured.
func DefaultMajorRoads() []MonitoredLocation {
	return []MonitoredLocation{
		{
			Name:        "Jalan Sudirman",
			Origin:      Coordinates{Lat: -6.2088, Lng: 106.8456},
			Destination: Coordinates{Lat: -6.2297, Lng: 106.8269},
		},
		{
			Name:        "Jalan Thamrin",
			Origin:      Coordinates{Lat: -6.1944, Lng: 106.8229},
			Destination: Coordinates{Lat: -6.2088, Lng: 106.8456},
		},
		{
			Name:        "Jalan Gatot Subroto",
			Origin:      Coordinates{Lat: -6.2297, Lng: 106.8269},
			Destination: Coordinates{Lat: -6.2615, Lng: 106.7942},
		},
		{
			Name:        "Jakarta-Cikampek Toll",
			Origin:      Coordinates{Lat: -6.1745, Lng: 106.8227},
			Destination: Coordinates{Lat: -6.3139, Lng: 107.1614},
		},
		{
			Name:        "Jalan Rasuna Said",
			Origin:      Coordinates{Lat: -6.2297, Lng: 106.8269},
			Destination: Coordinates{Lat: -6.2383, Lng: 106.8411},
		},
	}
}
