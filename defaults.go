package assetcache

// DefaultPreloadWorkers is the number of loader calls Preload runs at once
// when no WithWorkers option is given.
const DefaultPreloadWorkers = 4
