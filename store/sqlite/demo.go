package sqlite

import "github.com/msedcl/asset-dashboard/assets"

// Demo returns a small representative asset dataset for local runs without
// a production database. Counts are invented but plausible in scale.
func Demo() []assets.Record {
	return []assets.Record{
		{Region: "Pune", Zone: "Pune Urban", Circle: "Pune City", Substations: 112, DTCs: 4820, HTPoles: 20150, LTPoles: 51230},
		{Region: "Pune", Zone: "Pune Rural", Circle: "Baramati", Substations: 74, DTCs: 3910, HTPoles: 28440, LTPoles: 60320},
		{Region: "Pune", Zone: "Kolhapur", Circle: "Kolhapur", Substations: 68, DTCs: 3350, HTPoles: 24110, LTPoles: 55870},
		{Region: "Konkan", Zone: "Kalyan", Circle: "Kalyan I", Substations: 95, DTCs: 4480, HTPoles: 17890, LTPoles: 43210},
		{Region: "Konkan", Zone: "Vashi", Circle: "Vashi", Substations: 81, DTCs: 3720, HTPoles: 15230, LTPoles: 38990},
		{Region: "Nagpur", Zone: "Nagpur Urban", Circle: "Nagpur City", Substations: 64, DTCs: 2980, HTPoles: 16740, LTPoles: 41050},
		{Region: "Nagpur", Zone: "Chandrapur", Circle: "Chandrapur", Substations: 52, DTCs: 2440, HTPoles: 19880, LTPoles: 46730},
		{Region: "Aurangabad", Zone: "Aurangabad", Circle: "Aurangabad Urban", Substations: 58, DTCs: 2710, HTPoles: 21560, LTPoles: 49840},
		{Region: "Aurangabad", Zone: "Latur", Circle: "Latur", Substations: 47, DTCs: 2150, HTPoles: 18320, LTPoles: 44510},
		{Region: "Nashik", Zone: "Nashik", Circle: "Nashik Urban", Substations: 71, DTCs: 3240, HTPoles: 22470, LTPoles: 52630},
		{Region: "Nashik", Zone: "Jalgaon", Circle: "Jalgaon", Substations: 55, DTCs: 2590, HTPoles: 20110, LTPoles: 47290},
		{Region: "Amravati", Zone: "Amravati", Circle: "Amravati", Substations: 49, DTCs: 2280, HTPoles: 17650, LTPoles: 42380},
		{Region: "Amravati", Zone: "Akola", Circle: "Akola", Substations: 41, DTCs: 1940, HTPoles: 15980, LTPoles: 39120},
	}
}
