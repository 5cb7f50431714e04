package catalog

import "github.com/qxzcode/contractsolver/requirements"

// req is a terse constructor for Requirements, used only to keep Contracts
// below legible: all five axes are given positionally, in the order
// reactors, thrusters, shields, damage, crew.
func req(reactors, thrusters, shields, damage, crew int) requirements.Requirements {
	return requirements.New(reactors, thrusters, shields, damage, crew)
}

// Contracts is the reference catalog of named contracts, transcribed from
// the source material this package's documentation describes.
var Contracts = []Contract{
	{"Abandoned Vessel", Explore, Rewards{Prestige: 1, Credits: 4, Cards: 1}, req(3, 0, 0, 3, 0), 2},
	{"Derelict Planet", Explore, Rewards{Prestige: 3, Credits: 8}, req(5, 2, 0, 0, 3), 2},
	{"Reactor Failure", Rescue, Rewards{Prestige: 0, Credits: 3}, req(1, 0, 1, 0, 0), 0},
	{"Supernova Escape", Rescue, Rewards{Prestige: 1, Credits: 3}, req(0, 1, 2, 0, 0), 1},
	{"Asteroid Field", Explore, Rewards{Prestige: 2, Credits: 8}, req(4, 0, 0, 0, 3), 2},
	{"Icarus Run", Rescue, Rewards{Prestige: 2, Credits: 8}, req(0, 3, 3, 0, 0), 2},
	{"Space Anomaly", Explore, Rewards{Prestige: 0, Credits: 3}, req(1, 0, 0, 1, 0), 0},
	{"Gauntlet Run", Delivery, Rewards{Prestige: 3, Cards: 2}, req(0, 4, 0, 4, 0), 2},
	{"Nova Bloom", Explore, Rewards{Prestige: 3, Credits: 7}, req(5, 0, 3, 0, 0), 3},

	{"Decoy Target", Rescue, Rewards{Prestige: 3, Cards: 3}, req(0, 4, 0, 0, 0), 3},
	{"Kill Slavers", Kill, Rewards{Prestige: 0, Credits: 4}, req(0, 1, 0, 1, 0), 0},
	{"Refugee Crisis", Delivery, Rewards{Prestige: 2, Credits: 7}, req(0, 3, 0, 0, 2), 2},
	{"Emergency Meds", Delivery, Rewards{Prestige: 3, Credits: 8}, req(3, 4, 0, 4, 0), 2},
	{"Elite Squadron", Kill, Rewards{Prestige: 4, Credits: 6, Cards: 1}, req(4, 0, 3, 8, 0), 3},
	{"Resistance Leader", Rescue, Rewards{Prestige: 4, Credits: 6}, req(0, 2, 4, 0, 2), 3},
	{"Core World Ace", Kill, Rewards{Prestige: 1, Credits: 5, Cards: 1}, req(0, 0, 0, 5, 0), 1},
	{"Prison Moon", Rescue, Rewards{Prestige: 5, Credits: 10}, req(0, 4, 5, 2, 0), 4},
	{"Black Hole", Explore, Rewards{Prestige: 5, Credits: 12}, req(4, 4, 0, 0, 5), 4},

	{"Boarding Action", Explore, Rewards{Prestige: 4, Cards: 2}, req(0, 0, 0, 5, 4), 3},
	{"Escape Pods", Rescue, Rewards{Prestige: 2, Credits: 7}, req(0, 0, 3, 3, 0), 2},
	{"Transport Rescue", Rescue, Rewards{Prestige: 1, Credits: 3}, req(0, 0, 2, 0, 1), 1},
	{"Munitions Stockpile", Delivery, Rewards{Prestige: 3, Credits: 7}, req(0, 4, 3, 0, 0), 2},
	{"Bomber Screen", Kill, Rewards{Prestige: 3, Credits: 9}, req(0, 3, 0, 6, 0), 3},
	{"Assault on Vilonia", Kill, Rewards{Prestige: 3, Credits: 5, Cards: 1}, req(0, 0, 0, 8, 0), 2},
	{"Scout Cruiser", Kill, Rewards{Prestige: 3, Credits: 6}, req(0, 0, 2, 5, 0), 3},
	{"First Contact", Explore, Rewards{Prestige: 3, Cards: 2}, req(5, 0, 3, 0, 0), 2},
	{"Bounty Hunters", Kill, Rewards{Prestige: 3, Credits: 6}, req(0, 0, 0, 6, 2), 3},

	{"Martial Law", Rescue, Rewards{Prestige: 1, Credits: 4, Cards: 1}, req(0, 0, 2, 0, 2), 2},
	{"Blockade Run", Delivery, Rewards{Prestige: 0, Credits: 3}, req(0, 1, 1, 0, 0), 0},
	{"Probe Recovery", Explore, Rewards{Prestige: 1, Credits: 2, Cards: 1}, req(3, 2, 0, 0, 0), 1},
	{"Envoy in Distress", Rescue, Rewards{Prestige: 1, Credits: 2, Cards: 1}, req(0, 0, 2, 2, 0), 2},
	{"Stim Run", Delivery, Rewards{Prestige: 1, Credits: 2}, req(1, 2, 0, 0, 0), 1},
	{"Proof of Life", Delivery, Rewards{Prestige: 3, Credits: 4}, req(4, 4, 0, 0, 0), 2},
	{"Pirate Treasure", Explore, Rewards{Prestige: 1, Credits: 2}, req(2, 0, 1, 0, 0), 1},
	{"Ancient Ruins", Explore, Rewards{Prestige: 2, Credits: 7}, req(4, 4, 0, 0, 0), 2},
	{"Rival Pirate Gang", Kill, Rewards{Prestige: 1, Credits: 3}, req(0, 0, 1, 2, 0), 1},

	{"Distress Beacon", Explore, Rewards{Prestige: 1, Credits: 3}, req(3, 0, 0, 0, 1), 1},
	{"Fuel Shortage", Delivery, Rewards{Prestige: 1, Credits: 3}, req(0, 2, 0, 2, 0), 1},
	{"Negotiation Insurance", Delivery, Rewards{Prestige: 1, Credits: 2, Cards: 1}, req(0, 3, 0, 1, 0), 2},
	{"Focused Fire", Kill, Rewards{Prestige: 3, Cards: 3}, req(4, 0, 0, 6, 0), 3},
	{"Claim Bounty", Kill, Rewards{Prestige: 1, Credits: 3}, req(2, 0, 0, 3, 0), 1},
	{"Royal Cargo", Delivery, Rewards{Prestige: 5, Credits: 10}, req(0, 5, 0, 5, 2), 4},
	{"Admiral's Flagship", Kill, Rewards{Prestige: 5, Credits: 11, Cards: 1}, req(5, 0, 5, 8, 0), 4},
	{"Escort Duty", Delivery, Rewards{Prestige: 1, Credits: 2, Cards: 1}, req(0, 3, 0, 0, 1), 1},
	{"Cryogenic Pods", Rescue, Rewards{Prestige: 3, Credits: 7}, req(4, 0, 4, 0, 0), 3},
}
