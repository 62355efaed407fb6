package config

// Template is the starter configuration written by "readmecheck init".
const Template = `# readmecheck configuration
# See "readmecheck criteria" for the full list of checks and weights.

# Output format: text, json
format: text

# Colorize output: auto, always, never
color: auto

# Minimum passing score as a percentage. A README scoring below this makes
# readmecheck exit non-zero. 0 disables the threshold.
min_score: 0

# Show satisfied criteria in text output, not just the failing ones.
show_satisfied: true
`
