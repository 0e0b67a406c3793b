package catalog

// Master data for the evolution progression: 60 facilities across six
// eras, 11 upgrades, 14 achievements. Balance numbers are load-bearing;
// cost/production curves are tuned against the 1.15 growth rate and the
// milestone doubling schedule.

var masterTiers = []TierInfo{
	{Tier: 1, Name: "Solitary Dawn"},
	{Tier: 2, Name: "Rising Foundation"},
	{Tier: 3, Name: "Orbital Transcendence"},
	{Tier: 4, Name: "Planetary Federation"},
	{Tier: 5, Name: "Stellar Ascension"},
	{Tier: 6, Name: "Singularity & Rebirth"},
}

var masterFacilities = []Facility{
	// Era 1: the solitary study room. Cumulative KP 0 -> 10k.
	{ID: "notebook", Name: "Study Notebook", BaseCost: 10, BaseProduction: 0.1, UnlockAt: 0, Tier: 1},
	{ID: "pencil_set", Name: "Premium Pen Set", BaseCost: 25, BaseProduction: 0.3, UnlockAt: 15, Tier: 1},
	{ID: "desk_lamp", Name: "Desk Lamp", BaseCost: 50, BaseProduction: 0.5, UnlockAt: 40, Tier: 1},
	{ID: "bookshelf", Name: "Bookshelf", BaseCost: 100, BaseProduction: 1, UnlockAt: 80, Tier: 1},
	{ID: "study_desk", Name: "Study Desk", BaseCost: 200, BaseProduction: 2, UnlockAt: 150, Tier: 1},
	{ID: "pc_setup", Name: "PC Setup", BaseCost: 400, BaseProduction: 4, UnlockAt: 300, Tier: 1},
	{ID: "coffee_maker", Name: "Coffee Maker", BaseCost: 800, BaseProduction: 8, UnlockAt: 600, Tier: 1},
	{ID: "noise_canceling", Name: "Noise-Canceling Headphones", BaseCost: 1500, BaseProduction: 15, UnlockAt: 1000, Tier: 1},
	{ID: "einstein_poster", Name: "Einstein Poster", BaseCost: 3000, BaseProduction: 30, UnlockAt: 2000, Tier: 1},
	{ID: "study_room", Name: "Private Study Room", BaseCost: 6000, BaseProduction: 60, UnlockAt: 4000, Tier: 1},

	// Era 2: ground-based research. Cumulative KP 10k -> 500k.
	{ID: "lab_bench", Name: "Lab Bench", BaseCost: 12000, BaseProduction: 100, UnlockAt: 8000, Tier: 2},
	{ID: "microscope", Name: "Electron Microscope", BaseCost: 25000, BaseProduction: 200, UnlockAt: 15000, Tier: 2},
	{ID: "server_rack", Name: "Server Rack", BaseCost: 50000, BaseProduction: 400, UnlockAt: 30000, Tier: 2},
	{ID: "research_team", Name: "Research Team", BaseCost: 100000, BaseProduction: 800, UnlockAt: 60000, Tier: 2},
	{ID: "quantum_computer", Name: "Quantum Computer", BaseCost: 200000, BaseProduction: 1500, UnlockAt: 120000, Tier: 2},
	{ID: "ai_assistant", Name: "AI Study Assistant", BaseCost: 400000, BaseProduction: 3000, UnlockAt: 200000, Tier: 2},
	{ID: "library", Name: "Private Library", BaseCost: 800000, BaseProduction: 6000, UnlockAt: 350000, Tier: 2},
	{ID: "super_computer", Name: "Supercomputer", BaseCost: 1.5e6, BaseProduction: 12000, UnlockAt: 500000, Tier: 2},
	{ID: "research_center", Name: "Aerospace Research Wing", BaseCost: 3e6, BaseProduction: 25000, UnlockAt: 800000, Tier: 2},
	{ID: "phd", Name: "Doctorate", BaseCost: 6e6, BaseProduction: 50000, UnlockAt: 1.2e6, Tier: 2},

	// Era 3: into orbit. Cumulative KP 500k -> 50M.
	{ID: "satellite", Name: "Observation Satellite", BaseCost: 12e6, BaseProduction: 100000, UnlockAt: 2e6, Tier: 3},
	{ID: "space_center", Name: "Launch Complex", BaseCost: 25e6, BaseProduction: 200000, UnlockAt: 5e6, Tier: 3},
	{ID: "orbital_elevator_base", Name: "Orbital Elevator Base", BaseCost: 50e6, BaseProduction: 400000, UnlockAt: 10e6, Tier: 3},
	{ID: "iss", Name: "International Space Station", BaseCost: 100e6, BaseProduction: 800000, UnlockAt: 20e6, Tier: 3},
	{ID: "space_solar", Name: "Space Solar Array", BaseCost: 200e6, BaseProduction: 1.5e6, UnlockAt: 40e6, Tier: 3},
	{ID: "space_factory", Name: "Orbital Factory", BaseCost: 400e6, BaseProduction: 3e6, UnlockAt: 80e6, Tier: 3},
	{ID: "orbital_hotel", Name: "Orbital Hotel", BaseCost: 800e6, BaseProduction: 6e6, UnlockAt: 150e6, Tier: 3},
	{ID: "orbital_elevator", Name: "Orbital Elevator", BaseCost: 1.5e9, BaseProduction: 12e6, UnlockAt: 300e6, Tier: 3},
	{ID: "debris_cleaner", Name: "Debris Sweeper", BaseCost: 3e9, BaseProduction: 25e6, UnlockAt: 600e6, Tier: 3},
	{ID: "orbital_city", Name: "Orbital City", BaseCost: 6e9, BaseProduction: 50e6, UnlockAt: 1e9, Tier: 3},

	// Era 4: interplanetary civilization.
	{ID: "lunar_outpost", Name: "Lunar Outpost", BaseCost: 15e9, BaseProduction: 100e6, UnlockAt: 2e9, Tier: 4},
	{ID: "helium3_mining", Name: "Helium-3 Mine", BaseCost: 30e9, BaseProduction: 200e6, UnlockAt: 5e9, Tier: 4},
	{ID: "mars_lander", Name: "Mars Lander", BaseCost: 60e9, BaseProduction: 400e6, UnlockAt: 10e9, Tier: 4},
	{ID: "mars_dome", Name: "Mars Dome City", BaseCost: 120e9, BaseProduction: 800e6, UnlockAt: 25e9, Tier: 4},
	{ID: "terraforming", Name: "Mars Terraforming", BaseCost: 250e9, BaseProduction: 1.5e9, UnlockAt: 50e9, Tier: 4},
	{ID: "asteroid_mining", Name: "Asteroid Mining Fleet", BaseCost: 500e9, BaseProduction: 3e9, UnlockAt: 100e9, Tier: 4},
	{ID: "jupiter_station", Name: "Jupiter Orbital Station", BaseCost: 1e12, BaseProduction: 6e9, UnlockAt: 200e9, Tier: 4},
	{ID: "titan_base", Name: "Titan Resource Base", BaseCost: 2e12, BaseProduction: 12e9, UnlockAt: 400e9, Tier: 4},
	{ID: "europa_submarine", Name: "Europa Submarine", BaseCost: 4e12, BaseProduction: 25e9, UnlockAt: 800e9, Tier: 4},
	{ID: "federation", Name: "Interplanetary Federation", BaseCost: 8e12, BaseProduction: 50e9, UnlockAt: 1.5e12, Tier: 4},

	// Era 5: interstellar flight.
	{ID: "alpha_probe", Name: "Alpha Centauri Probe", BaseCost: 20e12, BaseProduction: 100e9, UnlockAt: 3e12, Tier: 5},
	{ID: "dyson_swarm", Name: "Dyson Swarm", BaseCost: 50e12, BaseProduction: 200e9, UnlockAt: 8e12, Tier: 5},
	{ID: "antimatter_engine", Name: "Antimatter Engine", BaseCost: 100e12, BaseProduction: 400e9, UnlockAt: 20e12, Tier: 5},
	{ID: "warp_prototype", Name: "Warp Drive Prototype", BaseCost: 250e12, BaseProduction: 800e9, UnlockAt: 50e12, Tier: 5},
	{ID: "dyson_sphere", Name: "Dyson Sphere", BaseCost: 500e12, BaseProduction: 1.5e12, UnlockAt: 100e12, Tier: 5},
	{ID: "warp_gate", Name: "Warp Gate", BaseCost: 1e15, BaseProduction: 3e12, UnlockAt: 200e12, Tier: 5},
	{ID: "first_contact", Name: "First Contact", BaseCost: 2.5e15, BaseProduction: 6e12, UnlockAt: 400e12, Tier: 5},
	{ID: "galactic_council", Name: "Galactic Council Seat", BaseCost: 5e15, BaseProduction: 12e12, UnlockAt: 800e12, Tier: 5},
	{ID: "galactic_network", Name: "Galactic Comm Network", BaseCost: 10e15, BaseProduction: 25e12, UnlockAt: 1.5e15, Tier: 5},
	{ID: "galactic_president", Name: "Galactic Federation President", BaseCost: 25e15, BaseProduction: 50e12, UnlockAt: 3e15, Tier: 5},

	// Era 6: the end and a new beginning.
	{ID: "mind_upload", Name: "Mind Upload", BaseCost: 50e15, BaseProduction: 100e12, UnlockAt: 5e15, Tier: 6},
	{ID: "black_hole_engine", Name: "Black Hole Engine", BaseCost: 100e15, BaseProduction: 200e12, UnlockAt: 10e15, Tier: 6},
	{ID: "time_reversal", Name: "Time Reversal Device", BaseCost: 250e15, BaseProduction: 400e12, UnlockAt: 25e15, Tier: 6},
	{ID: "parallel_observer", Name: "Parallel Universe Observer", BaseCost: 500e15, BaseProduction: 800e12, UnlockAt: 50e15, Tier: 6},
	{ID: "dark_matter_control", Name: "Dark Matter Control", BaseCost: 1e18, BaseProduction: 1.5e15, UnlockAt: 100e15, Tier: 6},
	{ID: "dark_energy_harvest", Name: "Dark Energy Harvest", BaseCost: 2.5e18, BaseProduction: 3e15, UnlockAt: 250e15, Tier: 6},
	{ID: "planet_forge", Name: "Planet Forge", BaseCost: 5e18, BaseProduction: 6e15, UnlockAt: 500e15, Tier: 6},
	{ID: "star_forge", Name: "Star Forge", BaseCost: 1e19, BaseProduction: 12e15, UnlockAt: 1e18, Tier: 6},
	{ID: "galaxy_forge", Name: "Galaxy Forge", BaseCost: 2.5e19, BaseProduction: 25e15, UnlockAt: 2.5e18, Tier: 6},
	{ID: "singularity", Name: "Technological Singularity", BaseCost: 1e20, BaseProduction: 100e15, UnlockAt: 1e19, Tier: 6},
}

var masterUpgrades = []Upgrade{
	{ID: "better_pencils", Name: "Quality Pencils", Cost: 100,
		Unlock: UpgradeUnlock{FacilityID: "notebook", Level: 10},
		Effect: Effect{Kind: EffectFacility, TargetFacility: "notebook", Factor: 2}},
	{ID: "ergonomic_chair", Name: "Ergonomic Chair", Cost: 1000,
		Unlock: UpgradeUnlock{FacilityID: "study_desk", Level: 10},
		Effect: Effect{Kind: EffectFacility, TargetFacility: "study_desk", Factor: 2}},
	{ID: "dual_monitors", Name: "Dual Monitors", Cost: 2000,
		Unlock: UpgradeUnlock{FacilityID: "pc_setup", Level: 10},
		Effect: Effect{Kind: EffectFacility, TargetFacility: "pc_setup", Factor: 2}},
	{ID: "global_1", Name: "Focus Training", Cost: 5000,
		Unlock: UpgradeUnlock{TotalKP: 3000},
		Effect: Effect{Kind: EffectGlobal, Factor: 1.1}},
	{ID: "ai_optimization", Name: "AI Optimization", Cost: 500000,
		Unlock: UpgradeUnlock{FacilityID: "ai_assistant", Level: 10},
		Effect: Effect{Kind: EffectFacility, TargetFacility: "ai_assistant", Factor: 3}},
	{ID: "quantum_upgrade", Name: "Qubit Expansion", Cost: 300000,
		Unlock: UpgradeUnlock{FacilityID: "quantum_computer", Level: 10},
		Effect: Effect{Kind: EffectFacility, TargetFacility: "quantum_computer", Factor: 3}},
	{ID: "global_2", Name: "Research Methodology", Cost: 1e6,
		Unlock: UpgradeUnlock{TotalKP: 500000},
		Effect: Effect{Kind: EffectGlobal, Factor: 1.25}},
	{ID: "space_efficiency", Name: "Space Program Efficiency", Cost: 50e6,
		Unlock: UpgradeUnlock{TotalKP: 10e6},
		Effect: Effect{Kind: EffectTier, TargetTier: 3, Factor: 2}},
	{ID: "planetary_synergy", Name: "Planetary Synergy", Cost: 5e12,
		Unlock: UpgradeUnlock{TotalKP: 1e12},
		Effect: Effect{Kind: EffectTier, TargetTier: 4, Factor: 2}},
	{ID: "galactic_wisdom", Name: "Galactic Wisdom", Cost: 1e15,
		Unlock: UpgradeUnlock{TotalKP: 1e14},
		Effect: Effect{Kind: EffectTier, TargetTier: 5, Factor: 3}},
	{ID: "cosmic_transcendence", Name: "Cosmic Transcendence", Cost: 1e20,
		Unlock: UpgradeUnlock{TotalKP: 1e19},
		Effect: Effect{Kind: EffectGlobal, Factor: 2}},
}

var masterAchievements = []Achievement{
	{ID: "kp_100", Name: "First Step", Condition: CondTotalKP, Threshold: 100},
	{ID: "kp_1000", Name: "Budding Knowledge", Condition: CondTotalKP, Threshold: 1000},
	{ID: "kp_10000", Name: "Road to Research", Condition: CondTotalKP, Threshold: 10000},
	{ID: "kp_1m", Name: "Scholar's Domain", Condition: CondTotalKP, Threshold: 1e6},
	{ID: "kp_1b", Name: "Gateway to Space", Condition: CondTotalKP, Threshold: 1e9},
	{ID: "kp_1t", Name: "Planetary Ruler", Condition: CondTotalKP, Threshold: 1e12},
	{ID: "kp_1qa", Name: "Galactic Conqueror", Condition: CondTotalKP, Threshold: 1e16},
	{ID: "facility_10", Name: "Facility Collector", Condition: CondTotalLevels, Threshold: 10},
	{ID: "facility_100", Name: "Construction King", Condition: CondTotalLevels, Threshold: 100},
	{ID: "facility_1000", Name: "Imperial Architect", Condition: CondTotalLevels, Threshold: 1000},
	{ID: "prestige_1", Name: "Grade Promotion", Condition: CondPrestigeCount, Threshold: 1},
	{ID: "prestige_5", Name: "Cycle of Learning", Condition: CondPrestigeCount, Threshold: 5},
	{ID: "prestige_10", Name: "Eternal Return", Condition: CondPrestigeCount, Threshold: 10},
	{ID: "lifetime_1b", Name: "Legacy of Knowledge", Condition: CondLifetimeKP, Threshold: 1e18},
}
