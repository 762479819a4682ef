package stats

// slot builds a record for tests; unspecified dimensions get stable defaults.
func slot(state, outcome, date string) Record {
	return Record{
		Facility:          "Unit A",
		Professional:      "Ana Maria Souza",
		Specialty:         "Cardiology",
		SpecialtyCategory: "Medical",
		SlotState:         state,
		MonitoringStatus:  outcome,
		CalendarDate:      date,
		StartTime:         "08:00",
	}
}

func withProfessional(r Record, name string) Record {
	r.Professional = name
	return r
}

func withSpecialty(r Record, specialty, category string) Record {
	r.Specialty = specialty
	r.SpecialtyCategory = category
	return r
}

func withFacility(r Record, facility string) Record {
	r.Facility = facility
	return r
}
