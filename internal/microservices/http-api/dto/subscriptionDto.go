package dto

// SubscribeDTO for POST /member/subscription
type SubscribeDTO struct {
	WebtoonID int64 `json:"webtoonId" binding:"required,gt=0"`
}

// AlarmDTO for PATCH /member/subscription/:webtoonId/alarm; pointer so false is distinguishable from missing
type AlarmDTO struct {
	AlarmOn *bool `json:"alarmOn" binding:"required"`
}
