package history

// qld2023 holds the Queensland settlement prices for 2023-2024 aggregated by
// month and hour of day, in $/MWh.
var qld2023 = Table{
	{ // January
		{Mean: 98.94, StdDev: 36.99},
		{Mean: 89.85, StdDev: 32.51},
		{Mean: 85.61, StdDev: 27.22},
		{Mean: 83.0, StdDev: 25.91},
		{Mean: 89.98, StdDev: 26.86},
		{Mean: 98.2, StdDev: 37.22},
		{Mean: 66.86, StdDev: 50.52},
		{Mean: 49.48, StdDev: 48.82},
		{Mean: 50.33, StdDev: 51.48},
		{Mean: 52.52, StdDev: 57.15},
		{Mean: 41.97, StdDev: 35.56},
		{Mean: 46.0, StdDev: 40.69},
		{Mean: 51.4, StdDev: 46.79},
		{Mean: 64.98, StdDev: 55.76},
		{Mean: 76.92, StdDev: 55.3},
		{Mean: 104.05, StdDev: 388.42},
		{Mean: 103.07, StdDev: 89.2},
		{Mean: 242.15, StdDev: 1056.05},
		{Mean: 890.99, StdDev: 2837.32},
		{Mean: 225.82, StdDev: 601.69},
		{Mean: 148.25, StdDev: 75.91},
		{Mean: 126.08, StdDev: 53.83},
		{Mean: 120.31, StdDev: 55.72},
		{Mean: 106.04, StdDev: 43.46},
	},
	{ // February
		{Mean: 92.95, StdDev: 33.07},
		{Mean: 85.94, StdDev: 27.85},
		{Mean: 79.23, StdDev: 25.83},
		{Mean: 76.41, StdDev: 20.67},
		{Mean: 81.63, StdDev: 21.59},
		{Mean: 104.99, StdDev: 37.37},
		{Mean: 94.37, StdDev: 45.93},
		{Mean: 52.65, StdDev: 49.16},
		{Mean: 39.5, StdDev: 41.04},
		{Mean: 38.84, StdDev: 42.73},
		{Mean: 34.24, StdDev: 38.97},
		{Mean: 36.06, StdDev: 38.12},
		{Mean: 47.37, StdDev: 50.59},
		{Mean: 55.31, StdDev: 53.25},
		{Mean: 70.63, StdDev: 68.67},
		{Mean: 80.43, StdDev: 78.08},
		{Mean: 100.49, StdDev: 84.52},
		{Mean: 278.4, StdDev: 1215.57},
		{Mean: 411.39, StdDev: 1348.6},
		{Mean: 195.68, StdDev: 453.77},
		{Mean: 135.93, StdDev: 59.26},
		{Mean: 114.78, StdDev: 46.89},
		{Mean: 106.32, StdDev: 43.26},
		{Mean: 95.32, StdDev: 29.58},
	},
	{ // March
		{Mean: 83.03, StdDev: 17.58},
		{Mean: 77.14, StdDev: 16.56},
		{Mean: 73.8, StdDev: 15.82},
		{Mean: 74.29, StdDev: 16.28},
		{Mean: 78.58, StdDev: 18.62},
		{Mean: 93.13, StdDev: 25.21},
		{Mean: 113.36, StdDev: 52.83},
		{Mean: 59.18, StdDev: 39.31},
		{Mean: 49.44, StdDev: 60.69},
		{Mean: 42.5, StdDev: 61.49},
		{Mean: 36.95, StdDev: 62.4},
		{Mean: 32.21, StdDev: 63.77},
		{Mean: 39.51, StdDev: 61.89},
		{Mean: 60.39, StdDev: 72.38},
		{Mean: 70.02, StdDev: 69.19},
		{Mean: 81.95, StdDev: 57.52},
		{Mean: 99.63, StdDev: 69.16},
		{Mean: 256.39, StdDev: 1064.22},
		{Mean: 413.53, StdDev: 1617.79},
		{Mean: 137.0, StdDev: 63.32},
		{Mean: 109.81, StdDev: 41.6},
		{Mean: 96.66, StdDev: 25.61},
		{Mean: 96.97, StdDev: 25.06},
		{Mean: 90.57, StdDev: 22.03},
	},
	{ // April
		{Mean: 109.3, StdDev: 37.96},
		{Mean: 98.73, StdDev: 31.95},
		{Mean: 92.79, StdDev: 30.37},
		{Mean: 91.99, StdDev: 28.09},
		{Mean: 96.04, StdDev: 32.2},
		{Mean: 105.02, StdDev: 39.95},
		{Mean: 131.08, StdDev: 58.35},
		{Mean: 68.72, StdDev: 49.48},
		{Mean: 27.19, StdDev: 40.74},
		{Mean: 14.26, StdDev: 43.92},
		{Mean: 7.48, StdDev: 47.61},
		{Mean: 11.01, StdDev: 47.55},
		{Mean: 18.7, StdDev: 48.62},
		{Mean: 32.29, StdDev: 48.12},
		{Mean: 57.06, StdDev: 57.87},
		{Mean: 74.86, StdDev: 49.01},
		{Mean: 130.29, StdDev: 70.7},
		{Mean: 259.28, StdDev: 172.02},
		{Mean: 255.18, StdDev: 567.3},
		{Mean: 140.33, StdDev: 44.09},
		{Mean: 135.97, StdDev: 51.6},
		{Mean: 124.43, StdDev: 42.96},
		{Mean: 132.54, StdDev: 47.13},
		{Mean: 122.34, StdDev: 46.75},
	},
	{ // May
		{Mean: 129.54, StdDev: 58.45},
		{Mean: 111.25, StdDev: 49.42},
		{Mean: 99.51, StdDev: 43.45},
		{Mean: 97.83, StdDev: 40.13},
		{Mean: 108.65, StdDev: 43.98},
		{Mean: 130.39, StdDev: 53.8},
		{Mean: 222.31, StdDev: 535.64},
		{Mean: 152.35, StdDev: 112.53},
		{Mean: 37.16, StdDev: 52.35},
		{Mean: 16.83, StdDev: 50.89},
		{Mean: -0.66, StdDev: 42.42},
		{Mean: 2.03, StdDev: 44.49},
		{Mean: 9.11, StdDev: 49.46},
		{Mean: 21.26, StdDev: 52.19},
		{Mean: 48.42, StdDev: 52.22},
		{Mean: 85.22, StdDev: 62.97},
		{Mean: 182.49, StdDev: 74.22},
		{Mean: 533.67, StdDev: 1783.82},
		{Mean: 310.91, StdDev: 985.13},
		{Mean: 175.24, StdDev: 61.72},
		{Mean: 169.73, StdDev: 61.55},
		{Mean: 149.77, StdDev: 59.9},
		{Mean: 159.31, StdDev: 59.02},
		{Mean: 138.8, StdDev: 50.85},
	},
	{ // June
		{Mean: 108.88, StdDev: 51.72},
		{Mean: 98.35, StdDev: 43.74},
		{Mean: 90.57, StdDev: 42.08},
		{Mean: 88.14, StdDev: 42.78},
		{Mean: 95.65, StdDev: 48.92},
		{Mean: 111.49, StdDev: 61.84},
		{Mean: 178.26, StdDev: 578.21},
		{Mean: 165.45, StdDev: 103.86},
		{Mean: 73.33, StdDev: 58.91},
		{Mean: 41.9, StdDev: 56.88},
		{Mean: 18.28, StdDev: 54.71},
		{Mean: 10.65, StdDev: 51.86},
		{Mean: 6.87, StdDev: 53.81},
		{Mean: 17.3, StdDev: 56.04},
		{Mean: 49.04, StdDev: 63.47},
		{Mean: 80.9, StdDev: 63.83},
		{Mean: 162.3, StdDev: 76.19},
		{Mean: 354.72, StdDev: 1042.38},
		{Mean: 248.9, StdDev: 535.02},
		{Mean: 174.07, StdDev: 75.16},
		{Mean: 159.48, StdDev: 70.58},
		{Mean: 135.4, StdDev: 66.85},
		{Mean: 134.43, StdDev: 64.34},
		{Mean: 123.23, StdDev: 60.68},
	},
	{ // July
		{Mean: 90.68, StdDev: 31.2},
		{Mean: 79.86, StdDev: 23.62},
		{Mean: 74.84, StdDev: 24.69},
		{Mean: 73.12, StdDev: 27.09},
		{Mean: 79.18, StdDev: 29.03},
		{Mean: 120.68, StdDev: 639.55},
		{Mean: 149.04, StdDev: 76.03},
		{Mean: 163.86, StdDev: 88.45},
		{Mean: 69.0, StdDev: 63.05},
		{Mean: 39.02, StdDev: 57.36},
		{Mean: 16.81, StdDev: 55.94},
		{Mean: 8.81, StdDev: 55.88},
		{Mean: 2.55, StdDev: 54.87},
		{Mean: 9.6, StdDev: 57.76},
		{Mean: 25.94, StdDev: 50.92},
		{Mean: 56.09, StdDev: 50.8},
		{Mean: 121.43, StdDev: 72.15},
		{Mean: 242.64, StdDev: 374.77},
		{Mean: 294.69, StdDev: 736.98},
		{Mean: 157.32, StdDev: 68.62},
		{Mean: 142.21, StdDev: 55.49},
		{Mean: 117.78, StdDev: 45.64},
		{Mean: 118.14, StdDev: 47.92},
		{Mean: 102.52, StdDev: 38.82},
	},
	{ // August
		{Mean: 96.81, StdDev: 39.81},
		{Mean: 87.58, StdDev: 34.92},
		{Mean: 82.45, StdDev: 32.67},
		{Mean: 80.96, StdDev: 32.52},
		{Mean: 87.94, StdDev: 41.93},
		{Mean: 105.18, StdDev: 49.24},
		{Mean: 162.33, StdDev: 177.73},
		{Mean: 103.79, StdDev: 113.27},
		{Mean: 18.75, StdDev: 54.08},
		{Mean: 4.7, StdDev: 65.25},
		{Mean: -8.72, StdDev: 67.68},
		{Mean: -10.09, StdDev: 53.63},
		{Mean: -12.85, StdDev: 49.84},
		{Mean: -8.73, StdDev: 50.8},
		{Mean: 6.87, StdDev: 58.12},
		{Mean: 31.92, StdDev: 62.96},
		{Mean: 104.63, StdDev: 75.38},
		{Mean: 385.71, StdDev: 1549.03},
		{Mean: 384.2, StdDev: 1220.3},
		{Mean: 176.7, StdDev: 323.18},
		{Mean: 140.48, StdDev: 58.02},
		{Mean: 122.4, StdDev: 49.56},
		{Mean: 120.65, StdDev: 48.71},
		{Mean: 109.32, StdDev: 41.78},
	},
	{ // September
		{Mean: 75.26, StdDev: 18.66},
		{Mean: 68.46, StdDev: 17.16},
		{Mean: 63.43, StdDev: 14.53},
		{Mean: 63.63, StdDev: 14.84},
		{Mean: 66.68, StdDev: 16.72},
		{Mean: 74.32, StdDev: 21.04},
		{Mean: 72.4, StdDev: 45.76},
		{Mean: 3.89, StdDev: 36.46},
		{Mean: -18.95, StdDev: 28.61},
		{Mean: -31.24, StdDev: 27.73},
		{Mean: -35.1, StdDev: 23.71},
		{Mean: -36.31, StdDev: 38.26},
		{Mean: -34.33, StdDev: 26.7},
		{Mean: -30.37, StdDev: 29.33},
		{Mean: -15.51, StdDev: 39.95},
		{Mean: -1.2, StdDev: 37.69},
		{Mean: 45.99, StdDev: 84.8},
		{Mean: 206.53, StdDev: 952.37},
		{Mean: 209.56, StdDev: 912.55},
		{Mean: 107.96, StdDev: 34.5},
		{Mean: 91.69, StdDev: 26.08},
		{Mean: 83.69, StdDev: 25.0},
		{Mean: 90.43, StdDev: 27.5},
		{Mean: 84.3, StdDev: 22.02},
	},
	{ // October
		{Mean: 82.87, StdDev: 37.28},
		{Mean: 79.54, StdDev: 39.67},
		{Mean: 73.29, StdDev: 28.36},
		{Mean: 73.96, StdDev: 29.18},
		{Mean: 79.17, StdDev: 33.4},
		{Mean: 88.55, StdDev: 45.48},
		{Mean: 33.53, StdDev: 47.92},
		{Mean: -8.72, StdDev: 36.93},
		{Mean: -21.65, StdDev: 32.23},
		{Mean: -30.31, StdDev: 25.07},
		{Mean: -32.88, StdDev: 23.75},
		{Mean: -33.18, StdDev: 24.34},
		{Mean: -31.47, StdDev: 25.23},
		{Mean: -23.95, StdDev: 32.47},
		{Mean: -5.49, StdDev: 48.82},
		{Mean: 17.13, StdDev: 52.4},
		{Mean: 55.22, StdDev: 50.77},
		{Mean: 188.3, StdDev: 676.65},
		{Mean: 193.63, StdDev: 370.89},
		{Mean: 123.31, StdDev: 56.59},
		{Mean: 104.0, StdDev: 51.34},
		{Mean: 90.49, StdDev: 45.35},
		{Mean: 106.19, StdDev: 62.29},
		{Mean: 93.23, StdDev: 52.49},
	},
	{ // November
		{Mean: 114.86, StdDev: 57.83},
		{Mean: 101.03, StdDev: 45.29},
		{Mean: 98.18, StdDev: 47.76},
		{Mean: 100.52, StdDev: 78.47},
		{Mean: 106.67, StdDev: 57.82},
		{Mean: 110.18, StdDev: 91.96},
		{Mean: 61.14, StdDev: 164.28},
		{Mean: 48.68, StdDev: 66.19},
		{Mean: 36.55, StdDev: 65.94},
		{Mean: 24.06, StdDev: 67.11},
		{Mean: 13.31, StdDev: 52.42},
		{Mean: 14.55, StdDev: 53.46},
		{Mean: 17.81, StdDev: 53.97},
		{Mean: 31.83, StdDev: 60.51},
		{Mean: 50.5, StdDev: 73.51},
		{Mean: 80.04, StdDev: 381.49},
		{Mean: 152.94, StdDev: 671.25},
		{Mean: 486.75, StdDev: 1779.55},
		{Mean: 561.1, StdDev: 2185.45},
		{Mean: 257.61, StdDev: 1110.25},
		{Mean: 143.83, StdDev: 64.95},
		{Mean: 133.56, StdDev: 68.4},
		{Mean: 133.21, StdDev: 64.71},
		{Mean: 126.51, StdDev: 65.15},
	},
	{ // December
		{Mean: 117.8, StdDev: 55.83},
		{Mean: 115.38, StdDev: 56.7},
		{Mean: 104.74, StdDev: 54.44},
		{Mean: 102.0, StdDev: 51.72},
		{Mean: 106.39, StdDev: 52.22},
		{Mean: 99.87, StdDev: 58.16},
		{Mean: 43.74, StdDev: 49.63},
		{Mean: 38.89, StdDev: 57.73},
		{Mean: 31.96, StdDev: 62.99},
		{Mean: 21.26, StdDev: 63.02},
		{Mean: 17.31, StdDev: 58.53},
		{Mean: 19.52, StdDev: 62.58},
		{Mean: 22.63, StdDev: 67.77},
		{Mean: 42.46, StdDev: 76.22},
		{Mean: 69.43, StdDev: 178.38},
		{Mean: 82.62, StdDev: 89.0},
		{Mean: 108.96, StdDev: 94.92},
		{Mean: 237.31, StdDev: 934.73},
		{Mean: 521.94, StdDev: 1841.67},
		{Mean: 245.34, StdDev: 682.66},
		{Mean: 162.76, StdDev: 74.22},
		{Mean: 138.45, StdDev: 59.74},
		{Mean: 144.83, StdDev: 66.86},
		{Mean: 133.67, StdDev: 63.06},
	},
}
