package statsapi

// Wire shapes for the MLB stats API. Unknown fields are ignored and missing
// fields decode to zero values, so upstream additions never break decoding.

type scheduleResponse struct {
	TotalGames int64          `json:"totalGames"`
	Dates      []dateResponse `json:"dates"`
}

type dateResponse struct {
	Date  string         `json:"date"`
	Games []gameResponse `json:"games"`
}

type gameResponse struct {
	GamePk       int64          `json:"gamePk"`
	GameDate     string         `json:"gameDate"`
	OfficialDate string         `json:"officialDate"`
	Status       statusResponse `json:"status"`
	Teams        teamsResponse  `json:"teams"`
	DoubleHeader string         `json:"doubleHeader"`
	GameNumber   int64          `json:"gameNumber"`
}

type statusResponse struct {
	AbstractGameState string `json:"abstractGameState"`
	DetailedState     string `json:"detailedState"`
	CodedGameState    string `json:"codedGameState"`
	StatusCode        string `json:"statusCode"`
}

type teamsResponse struct {
	Home sideResponse `json:"home"`
	Away sideResponse `json:"away"`
}

type sideResponse struct {
	Score int          `json:"score"`
	Team  teamResponse `json:"team"`
}

type teamResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type feedResponse struct {
	GamePk   int64            `json:"gamePk"`
	LiveData liveDataResponse `json:"liveData"`
}

type liveDataResponse struct {
	Plays playsResponse `json:"plays"`
}

type playsResponse struct {
	AllPlays []playResponse `json:"allPlays"`
}

type playResponse struct {
	Result resultResponse `json:"result"`
	About  aboutResponse  `json:"about"`
}

type resultResponse struct {
	Type        string `json:"type"`
	Event       string `json:"event"`
	Description string `json:"description"`
	RBI         int    `json:"rbi"`
	HomeScore   int    `json:"homeScore"`
	AwayScore   int    `json:"awayScore"`
}

type aboutResponse struct {
	Inning        int    `json:"inning"`
	HalfInning    string `json:"halfInning"`
	IsScoringPlay bool   `json:"isScoringPlay"`
}
