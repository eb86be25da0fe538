package catalog

type cityEntry struct {
	City string
	POIs []POI
}

// Built-in POI data for the supported destinations. Works without any
// external API.
var destinations = []cityEntry{
	{
		City: "Tokyo",
		POIs: []POI{
			{Name: "Meiji Shrine", Area: "Harajuku", Tags: []string{"culture", "history"}, Open: HourWindow{6, 17}, URL: "https://maps.google.com/?q=Meiji+Shrine+Tokyo"},
			{Name: "Takeshita Street", Area: "Harajuku", Tags: []string{"food", "shopping"}, Open: HourWindow{10, 21}, URL: "https://maps.google.com/?q=Takeshita+Street+Harajuku"},
			{Name: "Shibuya Crossing", Area: "Shibuya", Tags: []string{"culture"}, Open: HourWindow{0, 24}, URL: "https://maps.google.com/?q=Shibuya+Crossing"},
			{Name: "Ichiran Ramen", Area: "Shibuya", Tags: []string{"food"}, Open: HourWindow{10, 24}, URL: "https://maps.google.com/?q=Ichiran+Ramen+Shibuya"},
			{Name: "Senso-ji Temple", Area: "Asakusa", Tags: []string{"culture", "history"}, Open: HourWindow{6, 17}, URL: "https://maps.google.com/?q=Senso-ji+Temple"},
			{Name: "Ueno Park", Area: "Ueno", Tags: []string{"nature"}, Open: HourWindow{5, 23}, URL: "https://maps.google.com/?q=Ueno+Park+Tokyo"},
			{Name: "Tsukiji Outer Market", Area: "Tsukiji", Tags: []string{"food"}, Open: HourWindow{7, 14}, URL: "https://maps.google.com/?q=Tsukiji+Outer+Market"},
			{Name: "teamLab Planets", Area: "Toyosu", Tags: []string{"art", "culture"}, Open: HourWindow{10, 20}, URL: "https://maps.google.com/?q=teamLab+Planets+Tokyo"},
			{Name: "Tokyo Skytree", Area: "Sumida", Tags: []string{"culture", "architecture"}, Open: HourWindow{8, 22}, URL: "https://maps.google.com/?q=Tokyo+Skytree"},
			{Name: "Akihabara Electric Town", Area: "Akihabara", Tags: []string{"shopping", "culture"}, Open: HourWindow{10, 20}, URL: "https://maps.google.com/?q=Akihabara+Electric+Town"},
		},
	},
	{
		City: "Barcelona",
		POIs: []POI{
			{Name: "Sagrada Família", Area: "Eixample", Tags: []string{"architecture", "culture"}, Open: HourWindow{9, 19}, URL: "https://maps.google.com/?q=Sagrada+Familia+Barcelona"},
			{Name: "Park Güell", Area: "Gràcia", Tags: []string{"architecture", "nature"}, Open: HourWindow{8, 20}, URL: "https://maps.google.com/?q=Park+Guell+Barcelona"},
			{Name: "La Boqueria Market", Area: "Ciutat Vella", Tags: []string{"food"}, Open: HourWindow{8, 20}, URL: "https://maps.google.com/?q=La+Boqueria+Market"},
			{Name: "Barceloneta Beach", Area: "Barceloneta", Tags: []string{"beach", "nature"}, Open: HourWindow{6, 22}, URL: "https://maps.google.com/?q=Barceloneta+Beach"},
			{Name: "Gothic Quarter", Area: "Ciutat Vella", Tags: []string{"culture", "history"}, Open: HourWindow{0, 24}, URL: "https://maps.google.com/?q=Gothic+Quarter+Barcelona"},
			{Name: "Casa Batlló", Area: "Eixample", Tags: []string{"architecture", "culture"}, Open: HourWindow{9, 21}, URL: "https://maps.google.com/?q=Casa+Batllo+Barcelona"},
			{Name: "Camp Nou", Area: "Les Corts", Tags: []string{"sports", "culture"}, Open: HourWindow{10, 18}, URL: "https://maps.google.com/?q=Camp+Nou+Barcelona"},
			{Name: "Montjuïc Castle", Area: "Montjuïc", Tags: []string{"history", "culture"}, Open: HourWindow{10, 20}, URL: "https://maps.google.com/?q=Montjuic+Castle"},
		},
	},
	{
		City: "Singapore",
		POIs: []POI{
			{Name: "Singapore Zoo", Area: "Mandai", Tags: []string{"family", "kids", "nature"}, Open: HourWindow{8, 18}, URL: "https://maps.google.com/?q=Singapore+Zoo"},
			{Name: "S.E.A. Aquarium", Area: "Sentosa", Tags: []string{"family", "kids"}, Open: HourWindow{10, 19}, URL: "https://maps.google.com/?q=SEA+Aquarium+Singapore"},
			{Name: "Gardens by the Bay", Area: "Marina", Tags: []string{"nature", "art"}, Open: HourWindow{9, 21}, URL: "https://maps.google.com/?q=Gardens+by+the+Bay"},
			{Name: "Maxwell Food Centre", Area: "Chinatown", Tags: []string{"food"}, Open: HourWindow{8, 22}, URL: "https://maps.google.com/?q=Maxwell+Food+Centre"},
			{Name: "Marina Bay Sands SkyPark", Area: "Marina", Tags: []string{"architecture"}, Open: HourWindow{11, 21}, URL: "https://maps.google.com/?q=Marina+Bay+Sands+SkyPark"},
			{Name: "Universal Studios", Area: "Sentosa", Tags: []string{"family", "kids"}, Open: HourWindow{10, 19}, URL: "https://maps.google.com/?q=Universal+Studios+Singapore"},
			{Name: "Merlion Park", Area: "Marina", Tags: []string{"culture"}, Open: HourWindow{0, 24}, URL: "https://maps.google.com/?q=Merlion+Park+Singapore"},
		},
	},
	{
		City: "Paris",
		POIs: []POI{
			{Name: "Eiffel Tower", Area: "Champ de Mars", Tags: []string{"architecture", "culture"}, Open: HourWindow{9, 24}, URL: "https://maps.google.com/?q=Eiffel+Tower+Paris"},
			{Name: "Louvre Museum", Area: "1st Arrondissement", Tags: []string{"art", "culture", "history"}, Open: HourWindow{9, 18}, URL: "https://maps.google.com/?q=Louvre+Museum"},
			{Name: "Notre-Dame Cathedral", Area: "Île de la Cité", Tags: []string{"architecture", "history"}, Open: HourWindow{8, 19}, URL: "https://maps.google.com/?q=Notre+Dame+Cathedral"},
			{Name: "Montmartre & Sacré-Cœur", Area: "Montmartre", Tags: []string{"culture", "art"}, Open: HourWindow{6, 22}, URL: "https://maps.google.com/?q=Sacre+Coeur+Montmartre"},
			{Name: "Champs-Élysées", Area: "8th Arrondissement", Tags: []string{"shopping", "culture"}, Open: HourWindow{0, 24}, URL: "https://maps.google.com/?q=Champs+Elysees+Paris"},
			{Name: "Seine River Cruise", Area: "Seine", Tags: []string{"culture", "nature"}, Open: HourWindow{10, 22}, URL: "https://maps.google.com/?q=Seine+River+Cruise+Paris"},
			{Name: "Latin Quarter", Area: "5th Arrondissement", Tags: []string{"food", "culture"}, Open: HourWindow{0, 24}, URL: "https://maps.google.com/?q=Latin+Quarter+Paris"},
		},
	},
	{
		City: "New York",
		POIs: []POI{
			{Name: "Central Park", Area: "Manhattan", Tags: []string{"nature"}, Open: HourWindow{6, 25}, URL: "https://maps.google.com/?q=Central+Park+NYC"},
			{Name: "Times Square", Area: "Manhattan", Tags: []string{"culture", "nightlife"}, Open: HourWindow{0, 24}, URL: "https://maps.google.com/?q=Times+Square+NYC"},
			{Name: "Metropolitan Museum of Art", Area: "Manhattan", Tags: []string{"art", "culture"}, Open: HourWindow{10, 17}, URL: "https://maps.google.com/?q=Metropolitan+Museum+of+Art"},
			{Name: "Statue of Liberty", Area: "Liberty Island", Tags: []string{"history", "culture"}, Open: HourWindow{9, 17}, URL: "https://maps.google.com/?q=Statue+of+Liberty"},
			{Name: "Brooklyn Bridge", Area: "Brooklyn", Tags: []string{"architecture", "culture"}, Open: HourWindow{0, 24}, URL: "https://maps.google.com/?q=Brooklyn+Bridge"},
			{Name: "9/11 Memorial", Area: "Manhattan", Tags: []string{"history", "culture"}, Open: HourWindow{9, 20}, URL: "https://maps.google.com/?q=911+Memorial+NYC"},
			{Name: "Broadway Theatre District", Area: "Manhattan", Tags: []string{"culture", "nightlife"}, Open: HourWindow{10, 23}, URL: "https://maps.google.com/?q=Broadway+NYC"},
			{Name: "Chelsea Market", Area: "Manhattan", Tags: []string{"food", "shopping"}, Open: HourWindow{7, 21}, URL: "https://maps.google.com/?q=Chelsea+Market+NYC"},
		},
	},
	{
		City: "London",
		POIs: []POI{
			{Name: "Tower of London", Area: "Tower Hill", Tags: []string{"history", "culture"}, Open: HourWindow{9, 17}, URL: "https://maps.google.com/?q=Tower+of+London"},
			{Name: "British Museum", Area: "Bloomsbury", Tags: []string{"art", "history", "culture"}, Open: HourWindow{10, 17}, URL: "https://maps.google.com/?q=British+Museum"},
			{Name: "Buckingham Palace", Area: "Westminster", Tags: []string{"culture", "history"}, Open: HourWindow{9, 19}, URL: "https://maps.google.com/?q=Buckingham+Palace"},
			{Name: "Borough Market", Area: "Southwark", Tags: []string{"food"}, Open: HourWindow{10, 17}, URL: "https://maps.google.com/?q=Borough+Market+London"},
			{Name: "London Eye", Area: "South Bank", Tags: []string{"architecture", "culture"}, Open: HourWindow{10, 20}, URL: "https://maps.google.com/?q=London+Eye"},
			{Name: "Covent Garden", Area: "West End", Tags: []string{"shopping", "culture"}, Open: HourWindow{10, 20}, URL: "https://maps.google.com/?q=Covent+Garden+London"},
			{Name: "Hyde Park", Area: "Central London", Tags: []string{"nature"}, Open: HourWindow{5, 24}, URL: "https://maps.google.com/?q=Hyde+Park+London"},
		},
	},
}
