package hcl

// builtinCities is the table used when no configuration file is supplied.
const builtinCities = `
city "chicago" {
  file = "${data_dir}/chicago.csv"
}

city "new york city" {
  file = "${data_dir}/new_york_city.csv"
}

city "washington" {
  file = "${data_dir}/washington.csv"
}
`

// builtinFilename is the pseudo filename reported in diagnostics for builtinCities.
const builtinFilename = "<builtin>/cities.hcl"
