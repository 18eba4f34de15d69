package mockapi

// Canned OpenF1-shaped payloads for offline runs. The two sessions cover
// the schema variants the resolver has to handle: 9158 orders by date and
// reports gap, 9159 orders by lap_number and reports interval, 9160 has
// neither ordering nor gap columns.
var sessionFixtures = []map[string]any{
	{"session_key": 9158, "year": 2023, "country_name": "Italy", "session_name": "Race", "date_start": "2023-09-03T13:00:00+00:00"},
	{"session_key": 9159, "year": 2023, "country_name": "Italy", "session_name": "Qualifying", "date_start": "2023-09-02T14:00:00+00:00"},
	{"session_key": 9160, "year": 2023, "country_name": "Singapore", "session_name": "Practice 1", "date_start": "2023-09-15T09:30:00+00:00"},
}

var driverFixtures = []map[string]any{
	{"session_key": 9158, "driver_number": 1, "full_name": "Max Verstappen", "team_name": "Red Bull Racing"},
	{"session_key": 9158, "driver_number": 16, "full_name": "Charles Leclerc", "team_name": "Ferrari"},
	{"session_key": 9158, "driver_number": 55, "full_name": "Carlos Sainz", "team_name": "Ferrari"},
	{"session_key": 9159, "driver_number": 1, "full_name": "Max Verstappen", "team_name": "Red Bull Racing"},
	{"session_key": 9159, "driver_number": 4, "full_name": "Lando Norris", "team_name": "McLaren"},
	{"session_key": 9160, "driver_number": 63, "full_name": "George Russell", "team_name": "Mercedes"},
}

var positionFixtures = []map[string]any{
	// Race: date ordering, gap column, out-of-order feed. Driver 81 is
	// classified but missing from the roster above.
	{"session_key": 9158, "driver_number": 1, "position": 2, "date": "2023-09-03T13:05:00+00:00", "gap": nil},
	{"session_key": 9158, "driver_number": 1, "position": 1, "date": "2023-09-03T14:55:00+00:00", "gap": 0},
	{"session_key": 9158, "driver_number": 16, "position": 1, "date": "2023-09-03T13:05:00+00:00", "gap": nil},
	{"session_key": 9158, "driver_number": 16, "position": 3, "date": "2023-09-03T14:55:00+00:00", "gap": 11.064},
	{"session_key": 9158, "driver_number": 55, "position": 2, "date": "2023-09-03T14:55:01+00:00", "gap": 6.064},
	{"session_key": 9158, "driver_number": 81, "position": 4, "date": "2023-09-03T14:55:02+00:00", "gap": nil},

	// Qualifying: lap ordering, interval column.
	{"session_key": 9159, "driver_number": 1, "position": 1, "lap_number": 18, "interval": 0},
	{"session_key": 9159, "driver_number": 4, "position": 4, "lap_number": 2, "interval": "+1.002"},
	{"session_key": 9159, "driver_number": 4, "position": 2, "lap_number": 17, "interval": "+0.089"},

	// Practice: no ordering and no gap columns at all.
	{"session_key": 9160, "driver_number": 63, "position": 1},
}

var lapFixtures = []map[string]any{
	{"session_key": 9158, "driver_number": 1, "lap_number": 1, "lap_duration": nil},
	{"session_key": 9158, "driver_number": 1, "lap_number": 2, "lap_duration": 87.452},
	{"session_key": 9158, "driver_number": 1, "lap_number": 3, "lap_duration": 86.901},
	{"session_key": 9158, "driver_number": 1, "lap_number": 4, "lap_duration": 87.113},
	{"session_key": 9158, "driver_number": 16, "lap_number": 1, "lap_duration": nil},
	{"session_key": 9158, "driver_number": 16, "lap_number": 2, "lap_duration": 88.005},
}

var locationFixtures = []map[string]any{
	{"session_key": 9158, "driver_number": 1, "x": 0, "y": 0},
	{"session_key": 9158, "driver_number": 1, "x": 1204.0, "y": -3344.5},
	{"session_key": 9158, "driver_number": 1, "x": 1310.2, "y": -3290.8},
	{"session_key": 9158, "driver_number": 1, "x": 1402.9, "y": -3188.1},
	{"session_key": 9158, "driver_number": 16, "x": 0, "y": 0},
	{"session_key": 9158, "driver_number": 16, "x": 1222.7, "y": -3310.0},
}
