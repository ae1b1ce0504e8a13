package mappool

// StageIDs is the stage catalog.
var StageIDs = func() []StageID {
	ids := make([]StageID, 24)
	for i := range ids {
		ids[i] = StageID(i)
	}
	return ids
}()

// Default is the organizer baseline pool. It is only played when neither team
// submitted a pool.
var Default = FromModeMap(map[Mode][]StageID{
	ModeTurfWar:    {2, 7},
	ModeSplatZones: {6, 17},
	ModeTowerCtrl:  {1, 10},
	ModeRainmaker:  {0, 9},
	ModeClamBlitz:  {8, 14},
})
