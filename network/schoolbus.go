package network

// SchoolBus returns the reference network: seven bus stops and the college
// as fixed destination, laid out on an 800x600 canvas.
func SchoolBus() *Network {
	return &Network{
		Name:        "School Bus Route",
		Destination: 7,
		Stops: []Stop{
			{Label: "Stop 1", X: 100, Y: 100},
			{Label: "Stop 2", X: 250, Y: 100},
			{Label: "Stop 3", X: 100, Y: 200},
			{Label: "Stop 4", X: 250, Y: 200},
			{Label: "Stop 5", X: 400, Y: 100},
			{Label: "Stop 6", X: 400, Y: 200},
			{Label: "Stop 7", X: 550, Y: 100},
			{Label: "College", X: 550, Y: 200},
		},
		Roads: []Road{
			{From: 0, To: 1, Weight: 24},
			{From: 1, To: 4, Weight: 19},
			{From: 1, To: 5, Weight: 32},
			{From: 3, To: 0, Weight: 16},
			{From: 3, To: 1, Weight: 14},
			{From: 3, To: 4, Weight: 11},
			{From: 4, To: 6, Weight: 21},
			{From: 4, To: 7, Weight: 23},
			{From: 5, To: 7, Weight: 7},
			{From: 6, To: 7, Weight: 10},
			{From: 2, To: 3, Weight: 17},
		},
	}
}
