package models

// USAStates is the static seed catalog: the 50 states plus DC.
var USAStates = []State{
	{StateID: "AL", Name: "Alabama"},
	{StateID: "AK", Name: "Alaska"},
	{StateID: "AZ", Name: "Arizona"},
	{StateID: "AR", Name: "Arkansas"},
	{StateID: "CA", Name: "California"},
	{StateID: "CO", Name: "Colorado"},
	{StateID: "CT", Name: "Connecticut"},
	{StateID: "DE", Name: "Delaware"},
	{StateID: "FL", Name: "Florida"},
	{StateID: "GA", Name: "Georgia"},
	{StateID: "HI", Name: "Hawaii"},
	{StateID: "ID", Name: "Idaho"},
	{StateID: "IL", Name: "Illinois"},
	{StateID: "IN", Name: "Indiana"},
	{StateID: "IA", Name: "Iowa"},
	{StateID: "KS", Name: "Kansas"},
	{StateID: "KY", Name: "Kentucky"},
	{StateID: "LA", Name: "Louisiana"},
	{StateID: "ME", Name: "Maine"},
	{StateID: "MD", Name: "Maryland"},
	{StateID: "MA", Name: "Massachusetts"},
	{StateID: "MI", Name: "Michigan"},
	{StateID: "MN", Name: "Minnesota"},
	{StateID: "MS", Name: "Mississippi"},
	{StateID: "MO", Name: "Missouri"},
	{StateID: "MT", Name: "Montana"},
	{StateID: "NE", Name: "Nebraska"},
	{StateID: "NV", Name: "Nevada"},
	{StateID: "NH", Name: "New Hampshire"},
	{StateID: "NJ", Name: "New Jersey"},
	{StateID: "NM", Name: "New Mexico"},
	{StateID: "NY", Name: "New York"},
	{StateID: "NC", Name: "North Carolina"},
	{StateID: "ND", Name: "North Dakota"},
	{StateID: "OH", Name: "Ohio"},
	{StateID: "OK", Name: "Oklahoma"},
	{StateID: "OR", Name: "Oregon"},
	{StateID: "PA", Name: "Pennsylvania"},
	{StateID: "RI", Name: "Rhode Island"},
	{StateID: "SC", Name: "South Carolina"},
	{StateID: "SD", Name: "South Dakota"},
	{StateID: "TN", Name: "Tennessee"},
	{StateID: "TX", Name: "Texas"},
	{StateID: "UT", Name: "Utah"},
	{StateID: "VT", Name: "Vermont"},
	{StateID: "VA", Name: "Virginia"},
	{StateID: "WA", Name: "Washington"},
	{StateID: "WV", Name: "West Virginia"},
	{StateID: "WI", Name: "Wisconsin"},
	{StateID: "WY", Name: "Wyoming"},
	{StateID: "DC", Name: "District of Columbia"},
}
