package crt

// SeparateChaining - Collision Resolution Technique where colliding keys are linked in a chain hanging off their bucket
const SeparateChaining int = 1
