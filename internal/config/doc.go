// Package config loads the PawsMatch configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/pawsmatch/config.toml (default)
//  3. If the config file doesn't exist, fall back to Default()
//  4. If the file exists but fields are missing or blank, use defaults
//
// # TOML Format
//
//	buffer_size = 3
//	fetch_timeout = "10s"
//	image_api = "https://dog.ceo/api/breeds/image/random"
//	fallback_image = "https://images.dog.ceo/breeds/retriever-golden/n02099601_3004.jpg"
//	pool_path = ""                 # empty uses the built-in pool
//	interest_db = "~/.local/share/pawsmatch/interest.db"
//	log_file = "~/.local/share/pawsmatch/pawsmatch.log"
//	log_level = "info"
//	seed = 0                       # 0 seeds from the clock
//	swipe_threshold = 12           # cells
//	swipe_velocity = 60.0          # cells per second
//
// fallback_image, interest_db and log_file distinguish "absent" from "set to
// empty": an explicit empty string disables the fallback image, keeps
// interest records in memory, and turns logging off respectively.
//
// Tilde expansion is performed for every path. Missing config files are not
// an error; malformed ones are.
package config
